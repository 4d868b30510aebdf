// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{Version: "1.0.0"},
		Panel: ClientPanel{
			URL:            "https://panel.example.com",
			AdminAPIKey:    "ptla_secret",
			NodeID:         1,
			NestID:         5,
			EggID:          15,
			NodeIP:         "203.0.113.7",
			RequestTimeout: 15 * time.Second,
		},
		Ports: ClientPorts{
			GameMin:  30100,
			GameMax:  30999,
			AdminMin: 40100,
			AdminMax: 40999,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "coindesk.db"}},
		Updates: ClientUpdates{
			CheckURL: "https://example.com/update.json",
			Timeout:  10 * time.Second,
		},
		Workers: ClientWorkers{UpdateInterval: 6 * time.Hour},
	}
}

func TestClientConfigValidate_OK(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_Storage(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfigValidate_Panel(t *testing.T) {
	cfg := validClientConfig()
	cfg.Panel.URL = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPanelConfigs)

	cfg = validClientConfig()
	cfg.Panel.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPanelConfigs)
}

func TestClientConfigValidate_Ports(t *testing.T) {
	cfg := validClientConfig()
	cfg.Ports.GameMax = cfg.Ports.GameMin - 1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPortsConfigs)

	// Overlapping game/admin ranges are rejected.
	cfg = validClientConfig()
	cfg.Ports.AdminMin = cfg.Ports.GameMax - 10
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPortsConfigs)
}

func TestClientConfigValidate_Updates(t *testing.T) {
	cfg := validClientConfig()
	cfg.Updates.Timeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidUpdatesConfigs)
}
