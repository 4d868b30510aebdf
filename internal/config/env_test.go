// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "2.4.0",

		"PANEL_URL":             "https://panel.example.com",
		"PANEL_ADMIN_API_KEY":   "ptla_secret",
		"PANEL_LOCATION_ID":     "1",
		"PANEL_NODE_ID":         "3",
		"PANEL_NEST_ID":         "5",
		"PANEL_EGG_ID":          "15",
		"PANEL_NODE_IP":         "203.0.113.7",
		"PANEL_REQUEST_TIMEOUT": "20s",

		"PORTS_GAME_MIN":  "30100",
		"PORTS_GAME_MAX":  "30999",
		"PORTS_ADMIN_MIN": "40100",
		"PORTS_ADMIN_MAX": "40999",

		"STORAGE_DB_DATABASE_URI": "coindesk.db",

		"UPDATES_CHECK_URL":    "https://example.com/update.json",
		"UPDATES_DOWNLOAD_URL": "https://example.com/download",
		"UPDATES_TIMEOUT":      "10s",

		"WORKERS_UPDATE_INTERVAL": "6h",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "2.4.0", cfg.App.Version)

	assert.Equal(t, "https://panel.example.com", cfg.Panel.URL)
	assert.Equal(t, "ptla_secret", cfg.Panel.AdminAPIKey)
	assert.Equal(t, int64(1), cfg.Panel.LocationID)
	assert.Equal(t, int64(3), cfg.Panel.NodeID)
	assert.Equal(t, int64(5), cfg.Panel.NestID)
	assert.Equal(t, int64(15), cfg.Panel.EggID)
	assert.Equal(t, "203.0.113.7", cfg.Panel.NodeIP)
	assert.Equal(t, 20*time.Second, cfg.Panel.RequestTimeout)

	assert.Equal(t, 30100, cfg.Ports.GameMin)
	assert.Equal(t, 40999, cfg.Ports.AdminMax)

	assert.Equal(t, "coindesk.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "https://example.com/update.json", cfg.Updates.CheckURL)
	assert.Equal(t, 10*time.Second, cfg.Updates.Timeout)
	assert.Equal(t, 6*time.Hour, cfg.Workers.UpdateInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("PANEL_URL", "https://panel.example.com")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://panel.example.com", cfg.Panel.URL)
	assert.Empty(t, cfg.Panel.AdminAPIKey)
	assert.Zero(t, cfg.Ports.GameMin)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("PANEL_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
