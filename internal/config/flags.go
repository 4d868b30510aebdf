package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-panel-url panel base URL
//	-admin-api-key panel application (admin) API key
//	-node-id compute node id for allocation resolution
//	-nest-id / -egg-id server template identifiers
//	-node-ip public address new allocations are bound to
//	-d local key-value database path
//	-c/-config json file path with configs
//	-update-url update manifest URL
//	-request-timeout panel request timeout (e.g., "15s")
func ParseFlags() *StructuredConfig {
	var panelURL string
	var adminAPIKey string
	var locationID, nodeID, nestID, eggID int64
	var nodeIP string
	var databaseDSN string
	var jsonConfigPath string
	var updateURL string
	var requestTimeout time.Duration

	flag.StringVar(&panelURL, "panel-url", "", "Hosting panel base URL")
	flag.StringVar(&adminAPIKey, "admin-api-key", "", "Panel admin API key")
	flag.Int64Var(&locationID, "location-id", 0, "Panel location id")
	flag.Int64Var(&nodeID, "node-id", 0, "Panel node id")
	flag.Int64Var(&nestID, "nest-id", 0, "Panel nest id")
	flag.Int64Var(&eggID, "egg-id", 0, "Panel egg id")
	flag.StringVar(&nodeIP, "node-ip", "", "Node IP for new allocations")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&updateURL, "update-url", "", "Update manifest URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Panel request timeout (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		Panel: Panel{
			URL:            panelURL,
			AdminAPIKey:    adminAPIKey,
			LocationID:     locationID,
			NodeID:         nodeID,
			NestID:         nestID,
			EggID:          eggID,
			NodeIP:         nodeIP,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Updates: Updates{
			CheckURL: updateURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}
