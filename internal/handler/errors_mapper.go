// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package handler

import (
	"errors"

	"github.com/cloudix/coindesk/internal/adapter"
	"github.com/cloudix/coindesk/internal/service"
)

// localizedErrors maps the service error taxonomy to the Bulgarian
// messages shown in the UI.
var localizedErrors = map[error]string{
	service.ErrNotLoggedIn:  "Не си логнат",
	service.ErrNotAdmin:     "Нямаш администраторски права",
	service.ErrEmptyAPIKey:  "Невалиден API ключ",
	service.ErrInvalidEmail: "Невалидни данни",

	service.ErrUnknownQuest:    "Невалидна мисия",
	service.ErrQuestOnCooldown: "Вече е взета днес",

	service.ErrUnknownPlan:       "Невалиден план",
	service.ErrAlreadyRedeemed:   "Вече си използвал своето redemption!",
	service.ErrInsufficientCoins: "Няма достатъчно монети!",
	service.ErrMissingEmail:      "Моля въведи email адрес в Dashboard!",
	service.ErrAccountNotFound:   "Pterodactyl акаунтът не е намерен!",

	service.ErrAllocationConflict: "Портът вече е зает, опитай отново",
	service.ErrAllocationNotFound: "Неуспешно заделяне на порт",

	service.ErrInvalidTheme:  "Invalid settings",
	service.ErrURLNotAllowed: "URL not allowed",

	adapter.ErrNetwork:           "Няма връзка с панела",
	adapter.ErrMalformedResponse: "Невалиден отговор от панела",
	adapter.ErrUserNotFound:      "Pterodactyl акаунтът не е намерен!",
}

// localize translates err for the UI. Panel API errors carry their own
// message; everything unmapped falls back to a generic one.
func localize(err error) string {
	for target, msg := range localizedErrors {
		if errors.Is(err, target) {
			return msg
		}
	}
	if apiErr, ok := adapter.IsRemoteAPIError(err); ok {
		return apiErr.Error()
	}
	return "Възникна грешка, опитай отново"
}
