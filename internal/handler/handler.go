// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

// Package handler is the command surface between the UI and the service
// layer. Every method returns a result value with a localized message;
// raw errors never cross this boundary.
package handler

import (
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/service"
)

type Handler struct {
	services *service.ClientServices

	// panelURL is echoed in redemption results so the UI can link the
	// freshly created server.
	panelURL string

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, panelURL string, logger *logger.Logger) *Handler {
	logger.Info().Msg("command handler created")
	return &Handler{
		services: services,
		panelURL: panelURL,
		logger:   logger,
	}
}

// PanelURL returns the configured panel address for UI links.
func (h *Handler) PanelURL() string {
	return h.panelURL
}
