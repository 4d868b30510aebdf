// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package handler

import (
	"context"
	"fmt"

	"github.com/cloudix/coindesk/models"
)

func (h *Handler) Services(ctx context.Context) models.ServicesResult {
	return models.ServicesResult{
		Result:   models.OK(),
		Services: h.services.Redeem.Plans(),
	}
}

// ValidateRedeem runs the eligibility checks and hands the UI everything
// it needs to render the server-configuration form. No state changes.
func (h *Handler) ValidateRedeem(ctx context.Context, planID string) models.ValidateRedeemResult {
	validated, err := h.services.Redeem.Validate(ctx, planID)
	if err != nil {
		h.logger.Warn().Err(err).Str("plan", planID).Msg("redemption validation rejected")
		return models.ValidateRedeemResult{Result: models.Failure(localize(err))}
	}

	return models.ValidateRedeemResult{
		Result:      models.OK(),
		Plan:        validated.Plan.View(),
		PanelUserID: validated.PanelUser.ID,
		EggConfig:   validated.Egg,
		PanelURL:    h.panelURL,
	}
}

// ConfirmRedeem provisions the server and commits the coin debit.
func (h *Handler) ConfirmRedeem(ctx context.Context, planID, serverName string, env map[string]string) models.ConfirmRedeemResult {
	confirmed, err := h.services.Redeem.Confirm(ctx, planID, serverName, env)
	if err != nil {
		h.logger.Error().Err(err).Str("plan", planID).Msg("redemption failed")
		return models.ConfirmRedeemResult{Result: models.Failure(localize(err))}
	}

	result := models.ConfirmRedeemResult{
		Result:        models.OK(),
		Service:       confirmed.ServiceName,
		NewBalance:    confirmed.NewBalance,
		PanelServerID: confirmed.PanelServerID,
	}
	result.Message = fmt.Sprintf("🎉 FiveM сървърът е създаден!\nID: %s\nПанел: %s", confirmed.PanelServerID, h.panelURL)
	return result
}
