// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"context"
	"fmt"

	"github.com/cloudix/coindesk/internal/adapter"
	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
)

type allocationResolver struct {
	admin  adapter.AdminAdapter
	nodeID int64
	nodeIP string
	logger *logger.Logger
}

func NewAllocationResolver(admin adapter.AdminAdapter, cfg config.ClientPanel, log *logger.Logger) AllocationResolver {
	return &allocationResolver{admin: admin, nodeID: cfg.NodeID, nodeIP: cfg.NodeIP, logger: log}
}

// Resolve implements AllocationResolver. The listing is a single page of
// up to 500 entries; on nodes beyond that a free allocation may be
// missed. Resolution is idempotent when the port already exists and is
// free: no create call is issued.
func (r *allocationResolver) Resolve(ctx context.Context, port int) (int64, error) {
	allocations, err := r.admin.ListAllocations(ctx, r.nodeID)
	if err != nil {
		return 0, fmt.Errorf("listing allocations: %w", err)
	}

	for _, a := range allocations {
		if a.Port != port {
			continue
		}
		if a.Assigned {
			return 0, fmt.Errorf("%w: port %d", ErrAllocationConflict, port)
		}
		return a.ID, nil
	}

	if err = r.admin.CreateAllocation(ctx, r.nodeID, r.nodeIP, port); err != nil {
		return 0, fmt.Errorf("creating allocation for port %d: %w", port, err)
	}

	// The create endpoint returns no body, so re-list to learn the id.
	allocations, err = r.admin.ListAllocations(ctx, r.nodeID)
	if err != nil {
		return 0, fmt.Errorf("re-listing allocations: %w", err)
	}
	for _, a := range allocations {
		if a.Port == port && !a.Assigned {
			r.logger.Info().Int("port", port).Int64("allocation_id", a.ID).Msg("created allocation")
			return a.ID, nil
		}
	}

	return 0, fmt.Errorf("%w: port %d", ErrAllocationNotFound, port)
}
