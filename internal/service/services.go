// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import (
	"github.com/cloudix/coindesk/internal/adapter"
	"github.com/cloudix/coindesk/internal/config"
	"github.com/cloudix/coindesk/internal/crypto"
	"github.com/cloudix/coindesk/internal/logger"
	"github.com/cloudix/coindesk/internal/store"
)

// ClientServices bundles every application service for the handler and
// worker layers.
type ClientServices struct {
	Auth     AuthService
	User     UserService
	Quests   QuestService
	Redeem   RedeemService
	Settings SettingsService
	Updates  UpdateService
	External ExternalOpener
}

func NewClientServices(
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	admin adapter.AdminAdapter,
	account adapter.AccountAdapter,
	keychain crypto.KeyChainService,
	log *logger.Logger,
) *ClientServices {
	resolver := NewAllocationResolver(admin, cfg.Panel, log)
	provisioner := NewProvisioner(admin, resolver, cfg.Panel, cfg.Ports, log)

	return &ClientServices{
		Auth:     NewAuthService(storages.Users, account, keychain, log),
		User:     NewUserService(storages.Users, log),
		Quests:   NewQuestService(storages.Users, log),
		Redeem:   NewRedeemService(storages.Users, admin, provisioner, cfg.Panel.NestID, cfg.Panel.EggID, log),
		Settings: NewSettingsService(storages.Settings, log),
		Updates:  NewUpdateService(cfg.App.Version, cfg.Updates, log),
		External: NewExternalOpener(log),
	}
}
