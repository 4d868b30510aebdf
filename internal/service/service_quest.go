// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/store"
	"github.com/cloudix/coindesk/models"
)

type questService struct {
	users  store.UserRepository
	logger *logger.Logger

	// now is swappable for calendar-boundary tests.
	now func() time.Time
}

func NewQuestService(users store.UserRepository, log *logger.Logger) QuestService {
	return &questService{users: users, logger: log, now: time.Now}
}

// sameCalendarDay reports whether a and b fall on the same local date.
// Claims reset at midnight, not on a rolling 24h window.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (q *questService) List(ctx context.Context) ([]models.QuestStatus, error) {
	rec, err := q.users.Record(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading user record: %w", err)
	}

	now := q.now()
	statuses := make([]models.QuestStatus, 0, len(questCatalog))
	for _, quest := range questCatalog {
		progress := rec.Quests[quest.ID]
		statuses = append(statuses, models.QuestStatus{
			Quest:       quest,
			CanClaim:    progress.LastClaimed.IsZero() || !sameCalendarDay(progress.LastClaimed, now),
			LastClaimed: progress.LastClaimed,
		})
	}
	return statuses, nil
}

func (q *questService) Claim(ctx context.Context, questID string) (int, int, error) {
	quest, ok := questByID(questID)
	if !ok {
		return 0, 0, ErrUnknownQuest
	}

	rec, err := q.users.Record(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("loading user record: %w", err)
	}

	now := q.now()
	progress := rec.Quests[quest.ID]
	if !progress.LastClaimed.IsZero() && sameCalendarDay(progress.LastClaimed, now) {
		return 0, 0, ErrQuestOnCooldown
	}

	if rec.Quests == nil {
		rec.Quests = map[string]models.QuestProgress{}
	}
	rec.Quests[quest.ID] = models.QuestProgress{LastClaimed: now}
	rec.Coins += quest.Coins

	if err = q.users.SaveRecord(ctx, rec); err != nil {
		return 0, 0, fmt.Errorf("saving user record: %w", err)
	}

	q.logger.Info().
		Str("quest", quest.ID).
		Int("earned", quest.Coins).
		Int("balance", rec.Coins).
		Msg("quest claimed")
	return quest.Coins, rec.Coins, nil
}
