package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/mock"
	"github.com/cloudix/coindesk/models"
)

func newTestResolver(t *testing.T, ctrl *gomock.Controller) (AllocationResolver, *mock.MockAdminAdapter) {
	t.Helper()
	admin := mock.NewMockAdminAdapter(ctrl)
	cfg := config.ClientPanel{NodeID: 1, NodeIP: "203.0.113.7"}
	return NewAllocationResolver(admin, cfg, logger.Nop()), admin
}

func TestAllocationResolver_ExistingFreeAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, admin := newTestResolver(t, ctrl)
	ctx := context.Background()

	// Exactly one list call, no create: resolution is idempotent for a
	// port that already exists and is free.
	admin.EXPECT().ListAllocations(ctx, int64(1)).Return([]models.Allocation{
		{ID: 100, IP: "203.0.113.7", Port: 30499, Assigned: true},
		{ID: 101, IP: "203.0.113.7", Port: 30500, Assigned: false},
	}, nil)

	id, err := resolver.Resolve(ctx, 30500)

	require.NoError(t, err)
	assert.Equal(t, int64(101), id)
}

func TestAllocationResolver_PortAssignedElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, admin := newTestResolver(t, ctrl)
	ctx := context.Background()

	admin.EXPECT().ListAllocations(ctx, int64(1)).Return([]models.Allocation{
		{ID: 101, IP: "203.0.113.7", Port: 30500, Assigned: true},
	}, nil)

	_, err := resolver.Resolve(ctx, 30500)

	assert.ErrorIs(t, err, ErrAllocationConflict)
}

func TestAllocationResolver_CreatesMissingAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, admin := newTestResolver(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		admin.EXPECT().ListAllocations(ctx, int64(1)).Return(nil, nil),
		admin.EXPECT().CreateAllocation(ctx, int64(1), "203.0.113.7", 30500).Return(nil),
		admin.EXPECT().ListAllocations(ctx, int64(1)).Return([]models.Allocation{
			{ID: 102, IP: "203.0.113.7", Port: 30500, Assigned: false},
		}, nil),
	)

	id, err := resolver.Resolve(ctx, 30500)

	require.NoError(t, err)
	assert.Equal(t, int64(102), id)
}

func TestAllocationResolver_CreatedAllocationMissingOnRelist(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, admin := newTestResolver(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		admin.EXPECT().ListAllocations(ctx, int64(1)).Return(nil, nil),
		admin.EXPECT().CreateAllocation(ctx, int64(1), "203.0.113.7", 30500).Return(nil),
		admin.EXPECT().ListAllocations(ctx, int64(1)).Return(nil, nil),
	)

	_, err := resolver.Resolve(ctx, 30500)

	assert.ErrorIs(t, err, ErrAllocationNotFound)
}
