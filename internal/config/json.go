package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] as it is laid out in the
// JSON settings file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		URI         string   `json:"uri"`
		Timeout     Duration `json:"timeout"`
		AutoMigrate bool     `json:"auto_migrate"`
	} `json:"storage,omitempty"`

	Cache struct {
		RedisAddr string   `json:"redis_addr"`
		RedisDB   int      `json:"redis_db"`
		TTL       Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Seed struct {
		ConfigPath     string `json:"config_path"`
		ClientsPath    string `json:"clients_path"`
		AccountsPath   string `json:"accounts_path"`
		Upsert         bool   `json:"upsert"`
		DryRun         bool   `json:"dry_run"`
		MetricsPushURL string `json:"metrics_push_url"`
	} `json:"seed,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			URI:         jsonCfg.Storage.URI,
			Timeout:     time.Duration(jsonCfg.Storage.Timeout),
			AutoMigrate: jsonCfg.Storage.AutoMigrate,
		},
		Cache: Cache{
			RedisAddr: jsonCfg.Cache.RedisAddr,
			RedisDB:   jsonCfg.Cache.RedisDB,
			TTL:       time.Duration(jsonCfg.Cache.TTL),
		},
		Seed: Seed{
			ConfigPath:     jsonCfg.Seed.ConfigPath,
			ClientsPath:    jsonCfg.Seed.ClientsPath,
			AccountsPath:   jsonCfg.Seed.AccountsPath,
			Upsert:         jsonCfg.Seed.Upsert,
			DryRun:         jsonCfg.Seed.DryRun,
			MetricsPushURL: jsonCfg.Seed.MetricsPushURL,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
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
