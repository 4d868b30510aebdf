package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/models"
)

type panelAccountAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewPanelAccountAdapter constructs the [AccountAdapter]. The per-user
// client API key is supplied per call, not at construction: the key is
// entered interactively at login and may change between sessions.
func NewPanelAccountAdapter(cfg config.ClientPanel, log *logger.Logger) AccountAdapter {
	return &panelAccountAdapter{
		client: newPanelClient(cfg, log),
		logger: log,
	}
}

func (p *panelAccountAdapter) request(ctx context.Context, apiKey string) *resty.Request {
	return p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("X-Request-Id", uuid.NewString())
}

func (p *panelAccountAdapter) GetAccount(ctx context.Context, apiKey string) (models.PanelAccount, error) {
	resp, err := p.request(ctx, apiKey).Get("/api/client/account")
	if err != nil {
		return models.PanelAccount{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.PanelAccount{}, err
	}

	var account struct {
		Attributes models.PanelAccount `json:"attributes"`
	}
	if err = decodeBody(resp.Body(), &account); err != nil {
		return models.PanelAccount{}, err
	}
	if account.Attributes.Username == "" {
		return models.PanelAccount{}, fmt.Errorf("%w: missing account attributes", ErrMalformedResponse)
	}

	return account.Attributes, nil
}

// ownServerAttributes is the per-user API server shape, including the
// nested allocation relationship used to surface the primary ip:port.
type ownServerAttributes struct {
	Identifier    string `json:"identifier"`
	UUID          string `json:"uuid"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	Node          string `json:"node"`
	Relationships struct {
		Allocations struct {
			Data []struct {
				Attributes struct {
					IP   string `json:"ip"`
					Port int    `json:"port"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"allocations"`
	} `json:"relationships"`
}

func (p *panelAccountAdapter) ListOwnServers(ctx context.Context, apiKey string) ([]models.PanelServer, error) {
	resp, err := p.request(ctx, apiKey).Get("/api/client")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var list listEnvelope[ownServerAttributes]
	if err = decodeBody(resp.Body(), &list); err != nil {
		return nil, err
	}

	servers := make([]models.PanelServer, 0, len(list.Data))
	for _, s := range list.Data {
		server := models.PanelServer{
			ID:     s.Attributes.Identifier,
			UUID:   s.Attributes.UUID,
			Name:   s.Attributes.Name,
			Status: s.Attributes.Status,
			Node:   s.Attributes.Node,
		}
		if allocs := s.Attributes.Relationships.Allocations.Data; len(allocs) > 0 {
			server.IP = allocs[0].Attributes.IP
			server.Port = allocs[0].Attributes.Port
		}
		servers = append(servers, server)
	}

	p.logger.Debug().Int("servers", len(servers)).Msg("listed own servers")
	return servers, nil
}
