// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// coindesk application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the released version
	// string reported by the update checker.
	App App `envPrefix:"APP_"`

	// Panel holds the remote hosting-panel endpoint, credentials, and the
	// fixed resource identifiers used during server provisioning.
	Panel Panel `envPrefix:"PANEL_"`

	// Ports holds the pseudo-random selection ranges for the game and
	// admin-console allocations.
	Ports Ports `envPrefix:"PORTS_"`

	// Storage holds configuration for the local key-value store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Updates holds the update-check endpoint settings.
	Updates Updates `envPrefix:"UPDATES_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the CONFIG environment variable
	// or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.0.0"), compared against the published update manifest.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Panel holds the remote panel endpoint and the provisioning identifiers.
// The admin API key grants full-catalog access and must be kept
// confidential; the per-user key is supplied interactively at login and is
// never part of the configuration.
type Panel struct {
	// URL is the base URL of the hosting panel (e.g. "https://panel.example.com").
	// Env: PANEL_URL
	URL string `env:"URL"`

	// AdminAPIKey is the application (admin) API key used for
	// full-catalog operations: user lookup, egg fetch, allocation and
	// server creation.
	// Env: PANEL_ADMIN_API_KEY
	AdminAPIKey string `env:"ADMIN_API_KEY"`

	// LocationID is the panel location servers are created in.
	// Env: PANEL_LOCATION_ID
	LocationID int64 `env:"LOCATION_ID"`

	// NodeID is the compute node allocations are resolved on.
	// Env: PANEL_NODE_ID
	NodeID int64 `env:"NODE_ID"`

	// NestID and EggID identify the server template (egg) to instantiate.
	// Env: PANEL_NEST_ID, PANEL_EGG_ID
	NestID int64 `env:"NEST_ID"`
	EggID  int64 `env:"EGG_ID"`

	// NodeIP is the public address new allocations are bound to.
	// Env: PANEL_NODE_IP
	NodeIP string `env:"NODE_IP"`

	// RequestTimeout bounds every outbound panel call (e.g. "15s").
	// Env: PANEL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Ports holds the two disjoint pseudo-random port ranges used when
// resolving allocations: one for the primary game port, one for the
// auxiliary admin-console port. Disjoint ranges keep the two picks from
// colliding with each other.
type Ports struct {
	// GameMin/GameMax bound the primary game port range (inclusive).
	// Env: PORTS_GAME_MIN, PORTS_GAME_MAX
	GameMin int `env:"GAME_MIN"`
	GameMax int `env:"GAME_MAX"`

	// AdminMin/AdminMax bound the admin-console port range (inclusive).
	// Env: PORTS_ADMIN_MIN, PORTS_ADMIN_MAX
	AdminMin int `env:"ADMIN_MIN"`
	AdminMax int `env:"ADMIN_MAX"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local key-value database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite store.
type DB struct {
	// DSN is the SQLite file path of the local key-value store
	// (e.g. "coindesk.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Updates holds the update-check endpoint settings.
type Updates struct {
	// CheckURL is the location of the published update manifest
	// (a JSON document with version, downloadUrl, and changelog).
	// Env: UPDATES_CHECK_URL
	CheckURL string `env:"CHECK_URL"`

	// DownloadURL is the fallback download page opened when the manifest
	// does not carry its own URL.
	// Env: UPDATES_DOWNLOAD_URL
	DownloadURL string `env:"DOWNLOAD_URL"`

	// Timeout is the client-side timeout on the update-check call.
	// This is the only remote call in the application with a timeout of
	// its own; panel calls use Panel.RequestTimeout.
	// Env: UPDATES_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// UpdateInterval defines how often the background update checker runs.
	// Env: WORKERS_UPDATE_INTERVAL
	UpdateInterval time.Duration `env:"UPDATE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
