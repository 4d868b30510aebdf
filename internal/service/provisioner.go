// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/cloudix/coindesk/internal/adapter"
	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/models"
)

type provisioner struct {
	admin    adapter.AdminAdapter
	resolver AllocationResolver
	panel    config.ClientPanel
	ports    config.ClientPorts
	logger   *logger.Logger

	// pickPort is swappable so tests can fix the chosen ports.
	pickPort func(lo, hi int) int
}

func NewProvisioner(admin adapter.AdminAdapter, resolver AllocationResolver, panel config.ClientPanel, ports config.ClientPorts, log *logger.Logger) Provisioner {
	return &provisioner{
		admin:    admin,
		resolver: resolver,
		panel:    panel,
		ports:    ports,
		logger:   log,
		pickPort: func(lo, hi int) int { return lo + rand.Intn(hi-lo+1) },
	}
}

// Provision implements Provisioner. It resolves two allocations and
// creates the server; no local state is touched. When the admin-port
// resolution or the create call fails after the game allocation was
// resolved, that allocation is not released. The warn log names it so
// operators can reap orphans.
func (p *provisioner) Provision(ctx context.Context, in ProvisionInput) (models.ProvisionResult, error) {
	environment := buildEnvironment(in.Egg, in.Environment)

	gamePort := p.pickPort(p.ports.GameMin, p.ports.GameMax)
	adminPort := p.pickPort(p.ports.AdminMin, p.ports.AdminMax)
	environment["SERVER_PORT"] = strconv.Itoa(gamePort)
	environment["TXADMIN_PORT"] = strconv.Itoa(adminPort)

	gameAllocation, err := p.resolver.Resolve(ctx, gamePort)
	if err != nil {
		return models.ProvisionResult{}, fmt.Errorf("game allocation: %w", err)
	}

	adminAllocation, err := p.resolver.Resolve(ctx, adminPort)
	if err != nil {
		p.logger.Warn().
			Int64("allocation_id", gameAllocation).
			Int("port", gamePort).
			Msg("game allocation left unassigned after admin allocation failure")
		return models.ProvisionResult{}, fmt.Errorf("admin allocation: %w", err)
	}

	name := in.ServerName
	if name == "" {
		name = fmt.Sprintf("CloudiX-%d", time.Now().UnixMilli())
	}
	image := in.Egg.DockerImage
	if image == "" {
		image = fallbackDockerImage
	}

	req := models.CreateServerRequest{
		Name:        name,
		User:        in.PanelUserID,
		Egg:         p.panel.EggID,
		DockerImage: image,
		Startup:     in.Egg.Startup,
		Environment: environment,
		Limits: models.ServerLimits{
			Memory: in.Plan.Limits.Memory,
			Swap:   0,
			Disk:   in.Plan.Limits.Disk,
			IO:     500,
			CPU:    in.Plan.Limits.CPU,
		},
		FeatureLimits: models.ServerFeatureLimits{
			Databases:   in.Plan.Limits.Databases,
			Backups:     in.Plan.Limits.Backups,
			Allocations: 2,
		},
		Allocation: models.ServerAllocationBundle{
			Default:    gameAllocation,
			Additional: []int64{adminAllocation},
		},
	}

	created, err := p.admin.CreateServer(ctx, req)
	if err != nil {
		p.logger.Warn().
			Int64("game_allocation_id", gameAllocation).
			Int64("admin_allocation_id", adminAllocation).
			Msg("allocations left unassigned after server creation failure")
		return models.ProvisionResult{}, fmt.Errorf("creating server: %w", err)
	}

	p.logger.Info().
		Str("identifier", created.Identifier).
		Str("name", name).
		Int("game_port", gamePort).
		Int("admin_port", adminPort).
		Msg("server provisioned")

	return models.ProvisionResult{
		Identifier:    created.Identifier,
		UUID:          created.UUID,
		DockerImage:   image,
		GamePort:      gamePort,
		AdminPort:     adminPort,
		ProvisionedAt: time.Now(),
	}, nil
}

// buildEnvironment merges, in precedence order, the forced platform
// overrides, the user's form values, and the template defaults.
func buildEnvironment(egg models.EggConfig, user map[string]string) map[string]string {
	environment := make(map[string]string, len(egg.Variables)+2)
	for _, v := range egg.Variables {
		if value, ok := user[v.EnvVariable]; ok && value != "" {
			environment[v.EnvVariable] = value
			continue
		}
		environment[v.EnvVariable] = v.DefaultValue
	}

	environment["FIVEM_VERSION"] = fivemBuildID
	environment["TXADMIN_ENABLE"] = "1"
	return environment
}
