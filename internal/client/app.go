// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package client

import (
	"context"
	"errors"

	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/service"
	"github.com/cloudix/coindesk/internal/tui"
	"github.com/cloudix/coindesk/internal/workers"
)

// App ties the terminal UI and the background workers into one process
// lifecycle: workers start before the UI loop and stop when it exits.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		workers:  workers.NewWorkers(services.Updates, cfg, log),
		logger:   log,
	}, nil
}

// Run blocks until the user exits the terminal UI.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.workers.Run()
	defer a.workers.Stop()

	err := a.tui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("session ended by user")
		return nil
	}
	return err
}
