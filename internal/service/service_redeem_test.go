package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudix/coindesk/internal/adapter"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/mock"
	"github.com/cloudix/coindesk/internal/store"
	"github.com/cloudix/coindesk/models"
)

func newTestRedeemSvc(t *testing.T, ctrl *gomock.Controller) (*redeemService, store.UserRepository, *mock.MockAdminAdapter, *MockProvisioner) {
	t.Helper()
	users := store.NewUserRepository(store.NewMemoryDocument(), logger.Nop())
	admin := mock.NewMockAdminAdapter(ctrl)
	prov := NewMockProvisioner(ctrl)
	svc := NewRedeemService(users, admin, prov, 5, 15, logger.Nop()).(*redeemService)
	return svc, users, admin, prov
}

// seedEligible stores a record that passes every local guard for the
// standard plan.
func seedEligible(t *testing.T, users store.UserRepository) {
	t.Helper()
	ctx := context.Background()
	rec, err := users.Record(ctx)
	require.NoError(t, err)
	rec.Email = "alice@example.com"
	rec.Coins = 120
	require.NoError(t, users.SaveRecord(ctx, rec))
}

// ── Plans ───────────────────────────────────────────────────────────────────

func TestRedeemService_PlansHideLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestRedeemSvc(t, ctrl)

	plans := svc.Plans()

	require.Len(t, plans, 3)
	assert.Equal(t, "fivem_basic", plans[0].ID)
	assert.Equal(t, 50, plans[0].Cost)
	assert.Equal(t, 100, plans[1].Cost)
	assert.Equal(t, 150, plans[2].Cost)
	// The view type carries no limit profile at all.
	assert.NotEmpty(t, plans[0].Features)
}

// ── Validate ────────────────────────────────────────────────────────────────

func TestRedeemService_Validate_LocalGuardsBeforeRemote(t *testing.T) {
	// No admin adapter expectations in any case: a failed local guard
	// must short-circuit before the panel is contacted.
	cases := []struct {
		name    string
		mutate  func(rec *models.UserRecord)
		planID  string
		wantErr error
	}{
		{
			name:    "unknown plan",
			mutate:  func(rec *models.UserRecord) {},
			planID:  "fivem_mega",
			wantErr: ErrUnknownPlan,
		},
		{
			name:    "already redeemed",
			mutate:  func(rec *models.UserRecord) { rec.HasRedeemed = true },
			planID:  "fivem_standard",
			wantErr: ErrAlreadyRedeemed,
		},
		{
			name:    "insufficient coins",
			mutate:  func(rec *models.UserRecord) { rec.Coins = 99 },
			planID:  "fivem_standard",
			wantErr: ErrInsufficientCoins,
		},
		{
			name:    "missing email",
			mutate:  func(rec *models.UserRecord) { rec.Email = "" },
			planID:  "fivem_standard",
			wantErr: ErrMissingEmail,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _, _ := newTestRedeemSvc(t, ctrl)
			ctx := context.Background()

			seedEligible(t, users)
			rec, err := users.Record(ctx)
			require.NoError(t, err)
			tc.mutate(&rec)
			require.NoError(t, users.SaveRecord(ctx, rec))

			_, err = svc.Validate(ctx, tc.planID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRedeemService_Validate_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, admin, _ := newTestRedeemSvc(t, ctrl)
	ctx := context.Background()
	seedEligible(t, users)

	admin.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.PanelUser{}, adapter.ErrUserNotFound)

	_, err := svc.Validate(ctx, "fivem_standard")

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRedeemService_Validate_Success_NoLocalMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, admin, _ := newTestRedeemSvc(t, ctrl)
	ctx := context.Background()
	seedEligible(t, users)

	admin.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.PanelUser{ID: 12, Username: "alice"}, nil)
	admin.EXPECT().GetEggConfig(ctx, int64(5), int64(15)).Return(testEgg, nil)

	validated, err := svc.Validate(ctx, "fivem_standard")

	require.NoError(t, err)
	assert.Equal(t, "fivem_standard", validated.Plan.ID)
	assert.Equal(t, int64(12), validated.PanelUser.ID)
	assert.Equal(t, testEgg.Startup, validated.Egg.Startup)

	// Validate is read-only from the store's perspective.
	rec, err := users.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, rec.Coins)
	assert.False(t, rec.HasRedeemed)
}

// ── Confirm ─────────────────────────────────────────────────────────────────

func TestRedeemService_Confirm_CommitsAfterProvisioning(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, admin, prov := newTestRedeemSvc(t, ctrl)
	ctx := context.Background()
	seedEligible(t, users)

	admin.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.PanelUser{ID: 12}, nil)
	admin.EXPECT().GetEggConfig(ctx, int64(5), int64(15)).Return(testEgg, nil)
	prov.EXPECT().Provision(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in ProvisionInput) (models.ProvisionResult, error) {
			assert.Equal(t, int64(12), in.PanelUserID)
			assert.Equal(t, "fivem_standard", in.Plan.ID)
			assert.Equal(t, "My Server", in.ServerName)
			return models.ProvisionResult{Identifier: "a1b2c3d4", UUID: "uuid-value"}, nil
		},
	)

	confirmed, err := svc.Confirm(ctx, "fivem_standard", "My Server", map[string]string{"MAX_PLAYERS": "64"})

	require.NoError(t, err)
	assert.Equal(t, "FiveM Standard", confirmed.ServiceName)
	assert.Equal(t, 20, confirmed.NewBalance)
	assert.Equal(t, "a1b2c3d4", confirmed.PanelServerID)

	rec, err := users.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, rec.Coins)
	assert.True(t, rec.HasRedeemed)
	assert.Equal(t, "FiveM Standard", rec.RedeemedService)
	assert.Equal(t, int64(12), rec.PanelUserID)
	assert.Equal(t, "a1b2c3d4", rec.PanelServerID)
}

func TestRedeemService_Confirm_ProvisionFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, admin, prov := newTestRedeemSvc(t, ctrl)
	ctx := context.Background()
	seedEligible(t, users)

	admin.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.PanelUser{ID: 12}, nil)
	admin.EXPECT().GetEggConfig(ctx, int64(5), int64(15)).Return(testEgg, nil)
	prov.EXPECT().Provision(ctx, gomock.Any()).Return(models.ProvisionResult{}, errors.New("panel rejected request"))

	_, err := svc.Confirm(ctx, "fivem_standard", "", nil)
	require.Error(t, err)

	rec, err := users.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, rec.Coins)
	assert.False(t, rec.HasRedeemed)
	assert.Empty(t, rec.PanelServerID)
}

func TestRedeemService_Confirm_RevalidatesGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, admin, prov := newTestRedeemSvc(t, ctrl)
	ctx := context.Background()
	seedEligible(t, users)

	// First redemption commits.
	admin.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.PanelUser{ID: 12}, nil)
	admin.EXPECT().GetEggConfig(ctx, gomock.Any(), gomock.Any()).Return(testEgg, nil)
	prov.EXPECT().Provision(ctx, gomock.Any()).Return(models.ProvisionResult{Identifier: "a1b2c3d4"}, nil)

	_, err := svc.Confirm(ctx, "fivem_basic", "", nil)
	require.NoError(t, err)

	// Second confirm fails on the guard, without any remote call.
	_, err = svc.Confirm(ctx, "fivem_basic", "", nil)
	assert.ErrorIs(t, err, ErrAlreadyRedeemed)
}

// ── Guard function ──────────────────────────────────────────────────────────

func TestCheckEligibility_GuardOrder(t *testing.T) {
	plan, ok := planByID("fivem_standard")
	require.True(t, ok)

	// Redemption state is checked before the balance: a redeemed record
	// with too few coins reports the redemption, not the balance.
	err := checkEligibility(models.UserRecord{HasRedeemed: true, Coins: 0, Email: "a@b.co"}, plan)
	assert.ErrorIs(t, err, ErrAlreadyRedeemed)

	err = checkEligibility(models.UserRecord{Coins: 0, Email: ""}, plan)
	assert.ErrorIs(t, err, ErrInsufficientCoins)

	err = checkEligibility(models.UserRecord{Coins: 100, Email: ""}, plan)
	assert.ErrorIs(t, err, ErrMissingEmail)

	err = checkEligibility(models.UserRecord{Coins: 100, Email: "a@b.co"}, plan)
	assert.NoError(t, err)
}
