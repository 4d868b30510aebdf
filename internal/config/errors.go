package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPanelConfigs indicates invalid panel settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidPanelConfigs = errors.New("invalid panel configuration")
	// ErrInvalidPortsConfigs indicates invalid port-range settings
	// (for example, inverted bounds or overlapping game/admin ranges).
	ErrInvalidPortsConfigs = errors.New("invalid ports configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUpdatesConfigs indicates invalid update-check settings
	// (for example, zero timeout).
	ErrInvalidUpdatesConfigs = errors.New("invalid updates configuration")
)
