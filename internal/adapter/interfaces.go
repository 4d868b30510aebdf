// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

// Package adapter implements the Panel Client: stateless request wrappers
// issuing authenticated calls to the remote hosting panel's administrative
// and per-user APIs. No retries are performed at this layer; retry
// policy, if any, belongs to the caller.
package adapter

import (
	"context"

	"github.com/cloudix/coindesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AdminAdapter covers full-catalog operations performed with the
// application (admin) API key.
type AdminAdapter interface {
	// FindUserByEmail locates a panel account by email address.
	// Returns [ErrUserNotFound] when no account matches; it never
	// creates one.
	FindUserByEmail(ctx context.Context, email string) (models.PanelUser, error)

	// GetEggConfig fetches the server template (docker image, startup
	// command, declared variables) for the given nest/egg pair.
	GetEggConfig(ctx context.Context, nestID, eggID int64) (models.EggConfig, error)

	// ListAllocations returns the allocations of a node. A single page
	// of up to 500 entries is requested; nodes with more allocations
	// are not fully enumerated.
	ListAllocations(ctx context.Context, nodeID int64) ([]models.Allocation, error)

	// CreateAllocation requests creation of an (ip, port) pair on the
	// node. The panel returns no body for this call; the caller must
	// re-list to discover the new allocation id.
	CreateAllocation(ctx context.Context, nodeID int64, ip string, port int) error

	// CreateServer submits a server-creation request and returns the
	// created resource attributes.
	CreateServer(ctx context.Context, req models.CreateServerRequest) (models.CreatedServer, error)
}

// AccountAdapter covers self-service operations performed with a per-user
// client API key supplied at login.
type AccountAdapter interface {
	// GetAccount fetches the account that owns apiKey.
	GetAccount(ctx context.Context, apiKey string) (models.PanelAccount, error)

	// ListOwnServers lists the servers visible to apiKey's owner.
	ListOwnServers(ctx context.Context, apiKey string) ([]models.PanelServer, error)
}
