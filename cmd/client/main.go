// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/cloudix/coindesk/internal/adapter"
	"github.com/cloudix/coindesk/internal/client"
	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/crypto"
	"github.com/cloudix/coindesk/internal/handler"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/service"
	"github.com/cloudix/coindesk/internal/store"
	"github.com/cloudix/coindesk/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Missing .env is fine, configuration falls back to flags and defaults.
	_ = godotenv.Load()

	log := logger.NewClientLogger("coindesk")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	adminAdapter := adapter.NewPanelAdminAdapter(cfg.Panel, log)
	accountAdapter := adapter.NewPanelAccountAdapter(cfg.Panel, log)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(cfg, storages, adminAdapter, accountAdapter, crypto.NewKeyChainService(), log)
	commands := handler.NewHandler(services, cfg.Panel.URL, log)

	ui, err := tui.New(commands, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	var app client.Client
	app, err = client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
