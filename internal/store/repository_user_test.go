// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/models"
)

func newTestUserRepo() UserRepository {
	return NewUserRepository(NewMemoryDocument(), logger.Nop())
}

func TestRecord_InitializesDefaults(t *testing.T) {
	repo := newTestUserRepo()
	ctx := context.Background()

	rec, err := repo.Record(ctx)

	require.NoError(t, err)
	assert.Equal(t, "CloudiX User", rec.Username)
	assert.Empty(t, rec.Email)
	assert.Zero(t, rec.Coins)
	assert.False(t, rec.HasRedeemed)
	assert.NotNil(t, rec.Quests)
}

func TestSaveRecord_RoundTrip(t *testing.T) {
	repo := newTestUserRepo()
	ctx := context.Background()

	rec, err := repo.Record(ctx)
	require.NoError(t, err)

	rec.Coins = 150
	rec.Email = "user@example.com"
	rec.Quests["invite_5"] = models.QuestProgress{LastClaimed: time.Now()}
	require.NoError(t, repo.SaveRecord(ctx, rec))

	got, err := repo.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150, got.Coins)
	assert.Equal(t, "user@example.com", got.Email)
	assert.Contains(t, got.Quests, "invite_5")
}

func TestResetRecord_ClearsEverything(t *testing.T) {
	repo := newTestUserRepo()
	ctx := context.Background()

	rec, err := repo.Record(ctx)
	require.NoError(t, err)
	rec.Coins = 500
	rec.HasRedeemed = true
	rec.RedeemedService = "FiveM Basic"
	require.NoError(t, repo.SaveRecord(ctx, rec))
	require.NoError(t, repo.SaveSession(ctx, models.Session{AccountID: 7}))

	require.NoError(t, repo.ResetRecord(ctx))

	got, err := repo.Record(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.Coins)
	assert.False(t, got.HasRedeemed)
	assert.Empty(t, got.RedeemedService)

	_, err = repo.Session(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSession_NotFound(t *testing.T) {
	repo := newTestUserRepo()

	_, err := repo.Session(context.Background())

	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSession_SaveAndClear(t *testing.T) {
	repo := newTestUserRepo()
	ctx := context.Background()

	s := models.Session{
		AccountID:    42,
		Username:     "alice",
		Email:        "alice@example.com",
		Admin:        true,
		SealedAPIKey: "sealed",
		LoggedInAt:   time.Now(),
	}
	require.NoError(t, repo.SaveSession(ctx, s))

	got, err := repo.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.AccountID)
	assert.True(t, got.Admin)

	require.NoError(t, repo.ClearSession(ctx))
	_, err = repo.Session(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestPendingCoins_RoundTrip(t *testing.T) {
	repo := newTestUserRepo()
	ctx := context.Background()

	pending, err := repo.PendingCoins(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	pending["ghost@example.com"] = 75
	require.NoError(t, repo.SavePendingCoins(ctx, pending))

	got, err := repo.PendingCoins(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75, got["ghost@example.com"])

	// Saving an empty map removes the key entirely.
	require.NoError(t, repo.SavePendingCoins(ctx, map[string]int{}))
	got, err = repo.PendingCoins(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPendingResets_RoundTrip(t *testing.T) {
	repo := newTestUserRepo()
	ctx := context.Background()

	require.NoError(t, repo.SavePendingResets(ctx, []string{"ghost@example.com"}))

	got, err := repo.PendingResets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost@example.com"}, got)
}
