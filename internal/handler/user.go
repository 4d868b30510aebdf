// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package handler

import (
	"context"
	"fmt"

	"github.com/cloudix/coindesk/models"
)

func (h *Handler) UserData(ctx context.Context) models.UserDataResult {
	rec, err := h.services.User.Record(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("loading user data failed")
		return models.UserDataResult{Result: models.Failure(localize(err))}
	}
	return models.UserDataResult{Result: models.OK(), User: rec}
}

func (h *Handler) SaveUserData(ctx context.Context, username, email string) models.Result {
	if err := h.services.User.SaveProfile(ctx, username, email); err != nil {
		h.logger.Error().Err(err).Msg("saving user data failed")
		return models.Failure(localize(err))
	}
	return models.OK()
}

// ResetData wipes the local ledger back to defaults. The session stays.
func (h *Handler) ResetData(ctx context.Context) models.Result {
	if err := h.services.User.ResetData(ctx); err != nil {
		h.logger.Error().Err(err).Msg("data reset failed")
		return models.Failure(localize(err))
	}
	return models.OK()
}

// AdminAddCoins credits coins immediately for the current profile or
// queues the grant for another email.
func (h *Handler) AdminAddCoins(ctx context.Context, email string, amount int) models.BalanceResult {
	grant, err := h.services.User.AddCoins(ctx, email, amount)
	if err != nil {
		h.logger.Error().Err(err).Msg("admin add-coins failed")
		return models.BalanceResult{Result: models.Failure(localize(err))}
	}

	result := models.BalanceResult{Result: models.OK(), NewBalance: grant.NewBalance}
	if grant.Queued {
		result.Message = fmt.Sprintf("%d монети ще бъдат добавени на %s при следващ вход", amount, email)
	} else {
		result.Message = fmt.Sprintf("Добавени %d монети на %s", amount, email)
	}
	return result
}

func (h *Handler) AdminResetUser(ctx context.Context, email string) models.Result {
	grant, err := h.services.User.ResetUser(ctx, email)
	if err != nil {
		h.logger.Error().Err(err).Msg("admin reset-user failed")
		return models.Failure(localize(err))
	}

	result := models.OK()
	if grant.Queued {
		result.Message = fmt.Sprintf("Reset ще бъде приложен на %s при следващ вход", email)
	} else {
		result.Message = fmt.Sprintf("Reset redemption за %s", email)
	}
	return result
}

func (h *Handler) AdminResetAll(ctx context.Context, email string) models.Result {
	grant, err := h.services.User.ResetAll(ctx, email)
	if err != nil {
		h.logger.Error().Err(err).Msg("admin reset-all failed")
		return models.Failure(localize(err))
	}

	result := models.OK()
	if grant.Queued {
		result.Message = fmt.Sprintf("Reset ще бъде приложен на %s при следващ вход", email)
	} else {
		result.Message = fmt.Sprintf("Reset всички данни за %s", email)
	}
	return result
}
