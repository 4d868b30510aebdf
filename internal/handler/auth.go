// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package handler

import (
	"context"

	"github.com/cloudix/coindesk/models"
)

// Login exchanges a panel client API key for a cached session.
func (h *Handler) Login(ctx context.Context, apiKey string) models.LoginResult {
	account, servers, err := h.services.Auth.Login(ctx, apiKey)
	if err != nil {
		h.logger.Error().Err(err).Msg("login failed")
		return models.LoginResult{Result: models.Failure(localize(err))}
	}

	return models.LoginResult{
		Result:  models.OK(),
		Account: account,
		Servers: servers,
	}
}

func (h *Handler) Logout(ctx context.Context) models.Result {
	if err := h.services.Auth.Logout(ctx); err != nil {
		h.logger.Error().Err(err).Msg("logout failed")
		return models.Failure(localize(err))
	}
	return models.OK()
}

// LoginStatus reads the cached session; no panel call is made.
func (h *Handler) LoginStatus(ctx context.Context) models.LoginStatus {
	status, err := h.services.Auth.Status(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("login status check failed")
		return models.LoginStatus{IsLoggedIn: false}
	}
	return status
}
