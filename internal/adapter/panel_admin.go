package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/models"
)

type panelAdminAdapter struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewPanelAdminAdapter constructs the [AdminAdapter] authenticated with
// the application (admin) API key from the panel configuration.
func NewPanelAdminAdapter(cfg config.ClientPanel, log *logger.Logger) AdminAdapter {
	return &panelAdminAdapter{
		client: newPanelClient(cfg, log),
		apiKey: cfg.AdminAPIKey,
		logger: log,
	}
}

func (p *panelAdminAdapter) request(ctx context.Context) *resty.Request {
	return p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+p.apiKey).
		SetHeader("X-Request-Id", uuid.NewString())
}

// listEnvelope is the panel's generic paginated list shape.
type listEnvelope[T any] struct {
	Data []struct {
		Attributes T `json:"attributes"`
	} `json:"data"`
}

func (p *panelAdminAdapter) FindUserByEmail(ctx context.Context, email string) (models.PanelUser, error) {
	resp, err := p.request(ctx).
		Get("/api/application/users?filter[email]=" + url.QueryEscape(email))
	if err != nil {
		return models.PanelUser{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.PanelUser{}, err
	}

	var users listEnvelope[models.PanelUser]
	if err = decodeBody(resp.Body(), &users); err != nil {
		return models.PanelUser{}, err
	}

	if len(users.Data) == 0 {
		p.logger.Warn().Str("email", email).Msg("panel user not found")
		return models.PanelUser{}, ErrUserNotFound
	}

	found := users.Data[0].Attributes
	p.logger.Info().Str("email", email).Int64("user_id", found.ID).Msg("found existing panel user")
	return found, nil
}

func (p *panelAdminAdapter) GetEggConfig(ctx context.Context, nestID, eggID int64) (models.EggConfig, error) {
	resp, err := p.request(ctx).
		Get(fmt.Sprintf("/api/application/nests/%d/eggs/%d?include=variables", nestID, eggID))
	if err != nil {
		return models.EggConfig{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.EggConfig{}, err
	}

	var egg struct {
		Attributes struct {
			DockerImage   string `json:"docker_image"`
			Startup       string `json:"startup"`
			Relationships struct {
				Variables listEnvelope[models.EggVariable] `json:"variables"`
			} `json:"relationships"`
		} `json:"attributes"`
	}
	if err = decodeBody(resp.Body(), &egg); err != nil {
		return models.EggConfig{}, err
	}

	cfg := models.EggConfig{
		DockerImage: egg.Attributes.DockerImage,
		Startup:     egg.Attributes.Startup,
		Variables:   make([]models.EggVariable, 0, len(egg.Attributes.Relationships.Variables.Data)),
	}
	for _, v := range egg.Attributes.Relationships.Variables.Data {
		cfg.Variables = append(cfg.Variables, v.Attributes)
	}

	p.logger.Info().
		Int64("nest_id", nestID).
		Int64("egg_id", eggID).
		Int("variables", len(cfg.Variables)).
		Msg("fetched egg variables")
	return cfg, nil
}

func (p *panelAdminAdapter) ListAllocations(ctx context.Context, nodeID int64) ([]models.Allocation, error) {
	// One page only; nodes with more than 500 allocations are not fully
	// enumerated (see AdminAdapter contract).
	resp, err := p.request(ctx).
		Get(fmt.Sprintf("/api/application/nodes/%d/allocations?per_page=500", nodeID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var list listEnvelope[models.Allocation]
	if err = decodeBody(resp.Body(), &list); err != nil {
		return nil, err
	}

	allocations := make([]models.Allocation, 0, len(list.Data))
	for _, a := range list.Data {
		allocations = append(allocations, a.Attributes)
	}
	return allocations, nil
}

func (p *panelAdminAdapter) CreateAllocation(ctx context.Context, nodeID int64, ip string, port int) error {
	body := map[string]any{
		"ip":    ip,
		"ports": []string{strconv.Itoa(port)},
	}

	resp, err := p.request(ctx).
		SetBody(body).
		Post(fmt.Sprintf("/api/application/nodes/%d/allocations", nodeID))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	p.logger.Info().
		Int64("node_id", nodeID).
		Str("ip", ip).
		Int("port", port).
		Msg("created allocation")
	return nil
}

func (p *panelAdminAdapter) CreateServer(ctx context.Context, req models.CreateServerRequest) (models.CreatedServer, error) {
	resp, err := p.request(ctx).
		SetBody(req).
		Post("/api/application/servers")
	if err != nil {
		return models.CreatedServer{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.CreatedServer{}, err
	}

	var server struct {
		Attributes models.CreatedServer `json:"attributes"`
	}
	if err = decodeBody(resp.Body(), &server); err != nil {
		return models.CreatedServer{}, err
	}
	if server.Attributes.Identifier == "" {
		return models.CreatedServer{}, fmt.Errorf("%w: missing server identifier", ErrMalformedResponse)
	}

	p.logger.Info().
		Str("identifier", server.Attributes.Identifier).
		Int64("user_id", req.User).
		Msg("created panel server")
	return server.Attributes, nil
}
