// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Validation of the client view happens in [ClientConfig.validate]; the
// structured container itself only has to be mergeable.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Panel.URL == "" || cfg.Panel.RequestTimeout == 0 {
		return ErrInvalidPanelConfigs
	}

	if !validRange(cfg.Ports.GameMin, cfg.Ports.GameMax) || !validRange(cfg.Ports.AdminMin, cfg.Ports.AdminMax) {
		return ErrInvalidPortsConfigs
	}
	// The two ranges must stay disjoint so the two picks of one
	// provisioning attempt can never collide with each other.
	if cfg.Ports.GameMax >= cfg.Ports.AdminMin && cfg.Ports.AdminMax >= cfg.Ports.GameMin {
		return ErrInvalidPortsConfigs
	}

	if cfg.Updates.Timeout == 0 {
		return ErrInvalidUpdatesConfigs
	}

	return nil
}

func validRange(min, max int) bool {
	return min > 0 && max >= min && max < 65536
}
