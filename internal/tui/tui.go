// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

// Package tui is the terminal front end. It drives the command surface
// exposed by [handler.Handler]; no service or store types leak in here.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudix/coindesk/internal/handler"
	"github.com/cloudix/coindesk/internal/logger"
)

// ErrUserQuit is returned by Run when the user exits on purpose.
var ErrUserQuit = errors.New("излезе от програмата")

type TUI struct {
	handler *handler.Handler
	logger  *logger.Logger
}

func New(h *handler.Handler, log *logger.Logger) (*TUI, error) {
	return &TUI{handler: h, logger: log}, nil
}

// Run starts the interactive session. When a local session already
// exists the login screen is skipped and the dashboard opens directly.
func (t *TUI) Run(ctx context.Context) error {
	status := t.handler.LoginStatus(ctx)
	model := newAppModel(ctx, t.handler, status)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
