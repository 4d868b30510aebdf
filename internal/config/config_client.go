package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the running application version.
	Version string
}

// ClientPanel holds the remote panel endpoint and provisioning identifiers
// used by the adapter and provisioner.
type ClientPanel struct {
	// URL is the panel base URL.
	URL string
	// AdminAPIKey is the application (admin) API key.
	AdminAPIKey string
	// LocationID, NodeID, NestID, EggID are the fixed provisioning targets.
	LocationID int64
	NodeID     int64
	NestID     int64
	EggID      int64
	// NodeIP is the address new allocations are bound to.
	NodeIP string
	// RequestTimeout is the default timeout for outbound panel requests.
	RequestTimeout time.Duration
}

// ClientPorts holds the pseudo-random port selection ranges.
type ClientPorts struct {
	GameMin  int
	GameMax  int
	AdminMin int
	AdminMax int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local key-value store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientUpdates contains update-check settings.
type ClientUpdates struct {
	CheckURL    string
	DownloadURL string
	Timeout     time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// UpdateInterval defines how often the background update checker runs.
	UpdateInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Panel contains the remote panel endpoint and provisioning targets.
	Panel ClientPanel
	// Ports contains the allocation port selection ranges.
	Ports ClientPorts
	// Storage contains client storage settings.
	Storage ClientStorage
	// Updates contains update-check settings.
	Updates ClientUpdates
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Panel: ClientPanel{
			URL:            cfg.Panel.URL,
			AdminAPIKey:    cfg.Panel.AdminAPIKey,
			LocationID:     cfg.Panel.LocationID,
			NodeID:         cfg.Panel.NodeID,
			NestID:         cfg.Panel.NestID,
			EggID:          cfg.Panel.EggID,
			NodeIP:         cfg.Panel.NodeIP,
			RequestTimeout: cfg.Panel.RequestTimeout,
		},
		Ports: ClientPorts{
			GameMin:  cfg.Ports.GameMin,
			GameMax:  cfg.Ports.GameMax,
			AdminMin: cfg.Ports.AdminMin,
			AdminMax: cfg.Ports.AdminMax,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Updates: ClientUpdates{
			CheckURL:    cfg.Updates.CheckURL,
			DownloadURL: cfg.Updates.DownloadURL,
			Timeout:     cfg.Updates.Timeout,
		},
		Workers: ClientWorkers{UpdateInterval: cfg.Workers.UpdateInterval},
	}

	return clientCfg, clientCfg.validate()
}
