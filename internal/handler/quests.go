// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package handler

import (
	"context"

	"github.com/cloudix/coindesk/models"
)

func (h *Handler) Quests(ctx context.Context) models.QuestsResult {
	statuses, err := h.services.Quests.List(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("listing quests failed")
		return models.QuestsResult{Result: models.Failure(localize(err))}
	}
	return models.QuestsResult{Result: models.OK(), Quests: statuses}
}

func (h *Handler) ClaimQuest(ctx context.Context, questID string) models.ClaimResult {
	earned, balance, err := h.services.Quests.Claim(ctx, questID)
	if err != nil {
		h.logger.Warn().Err(err).Str("quest", questID).Msg("claim rejected")
		return models.ClaimResult{Result: models.Failure(localize(err))}
	}
	return models.ClaimResult{
		Result:      models.OK(),
		CoinsEarned: earned,
		NewBalance:  balance,
	}
}
