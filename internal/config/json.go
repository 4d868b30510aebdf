package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Panel struct {
		URL            string   `json:"url"`
		AdminAPIKey    string   `json:"admin_api_key"`
		LocationID     int64    `json:"location_id"`
		NodeID         int64    `json:"node_id"`
		NestID         int64    `json:"nest_id"`
		EggID          int64    `json:"egg_id"`
		NodeIP         string   `json:"node_ip"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"panel,omitempty"`

	Ports struct {
		GameMin  int `json:"game_min"`
		GameMax  int `json:"game_max"`
		AdminMin int `json:"admin_min"`
		AdminMax int `json:"admin_max"`
	} `json:"ports,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Updates struct {
		CheckURL    string   `json:"check_url"`
		DownloadURL string   `json:"download_url"`
		Timeout     Duration `json:"timeout"`
	} `json:"updates,omitempty"`

	Workers struct {
		UpdateInterval Duration `json:"update_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Panel: Panel{
			URL:            jsonCfg.Panel.URL,
			AdminAPIKey:    jsonCfg.Panel.AdminAPIKey,
			LocationID:     jsonCfg.Panel.LocationID,
			NodeID:         jsonCfg.Panel.NodeID,
			NestID:         jsonCfg.Panel.NestID,
			EggID:          jsonCfg.Panel.EggID,
			NodeIP:         jsonCfg.Panel.NodeIP,
			RequestTimeout: time.Duration(jsonCfg.Panel.RequestTimeout),
		},
		Ports: Ports{
			GameMin:  jsonCfg.Ports.GameMin,
			GameMax:  jsonCfg.Ports.GameMax,
			AdminMin: jsonCfg.Ports.AdminMin,
			AdminMax: jsonCfg.Ports.AdminMax,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Updates: Updates{
			CheckURL:    jsonCfg.Updates.CheckURL,
			DownloadURL: jsonCfg.Updates.DownloadURL,
			Timeout:     time.Duration(jsonCfg.Updates.Timeout),
		},
		Workers: Workers{
			UpdateInterval: time.Duration(jsonCfg.Workers.UpdateInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
