package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/store"
)

func newTestQuestSvc(t *testing.T) (*questService, store.UserRepository) {
	t.Helper()
	users := store.NewUserRepository(store.NewMemoryDocument(), logger.Nop())
	svc := NewQuestService(users, logger.Nop()).(*questService)
	return svc, users
}

func TestQuestService_List_FreshRecord(t *testing.T) {
	svc, _ := newTestQuestSvc(t)

	statuses, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, statuses, len(questCatalog))
	for _, s := range statuses {
		assert.True(t, s.CanClaim, s.ID)
		assert.True(t, s.LastClaimed.IsZero(), s.ID)
	}
}

func TestQuestService_Claim_CreditsReward(t *testing.T) {
	svc, users := newTestQuestSvc(t)
	ctx := context.Background()

	earned, balance, err := svc.Claim(ctx, "invite_5")

	require.NoError(t, err)
	assert.Equal(t, 25, earned)
	assert.Equal(t, 25, balance)

	rec, err := users.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, rec.Coins)
	assert.False(t, rec.Quests["invite_5"].LastClaimed.IsZero())
}

func TestQuestService_Claim_UnknownQuest(t *testing.T) {
	svc, _ := newTestQuestSvc(t)

	_, _, err := svc.Claim(context.Background(), "invite_999")

	assert.ErrorIs(t, err, ErrUnknownQuest)
}

func TestQuestService_Claim_TwicePerDayRejected(t *testing.T) {
	svc, _ := newTestQuestSvc(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return base }

	_, _, err := svc.Claim(ctx, "invite_1")
	require.NoError(t, err)

	// Later the same day, even just before midnight.
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local) }
	_, _, err = svc.Claim(ctx, "invite_1")
	assert.ErrorIs(t, err, ErrQuestOnCooldown)
}

func TestQuestService_Claim_ResetsAtMidnightNotRolling24h(t *testing.T) {
	svc, _ := newTestQuestSvc(t)
	ctx := context.Background()

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 23, 0, 0, 0, time.Local) }
	_, _, err := svc.Claim(ctx, "invite_2")
	require.NoError(t, err)

	// Two hours later but a new calendar day: claimable again.
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 1, 0, 0, 0, time.Local) }
	earned, balance, err := svc.Claim(ctx, "invite_2")
	require.NoError(t, err)
	assert.Equal(t, 10, earned)
	assert.Equal(t, 20, balance)
}

func TestQuestService_List_ReflectsClaimState(t *testing.T) {
	svc, _ := newTestQuestSvc(t)
	ctx := context.Background()

	claimTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return claimTime }
	_, _, err := svc.Claim(ctx, "invite_10")
	require.NoError(t, err)

	statuses, err := svc.List(ctx)
	require.NoError(t, err)

	for _, s := range statuses {
		if s.ID == "invite_10" {
			assert.False(t, s.CanClaim)
			assert.True(t, claimTime.Equal(s.LastClaimed))
		} else {
			assert.True(t, s.CanClaim, s.ID)
		}
	}
}
