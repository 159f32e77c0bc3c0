package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Environment          string `json:"environment"`
		ConstantPrefix       string `json:"constant_prefix"`
		NumericCoercion      bool   `json:"numeric_coercion"`
		PathCanonicalization bool   `json:"path_canonicalization"`
		LogLevel             string `json:"log_level"`
		Version              string `json:"version"`
	} `json:"app,omitempty"`

	Source struct {
		Dir             string `json:"dir"`
		NamespacePrefix string `json:"namespace_prefix"`
	} `json:"source,omitempty"`

	Snapshot struct {
		Enabled bool   `json:"enabled"`
		Dir     string `json:"dir"`
		File    string `json:"file"`
	} `json:"snapshot,omitempty"`

	Cache struct {
		Driver         string   `json:"driver"`
		DSN            string   `json:"dsn"`
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"cache,omitempty"`

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
			Environment:          jsonCfg.App.Environment,
			ConstantPrefix:       jsonCfg.App.ConstantPrefix,
			NumericCoercion:      jsonCfg.App.NumericCoercion,
			PathCanonicalization: jsonCfg.App.PathCanonicalization,
			LogLevel:             jsonCfg.App.LogLevel,
			Version:              jsonCfg.App.Version,
		},
		Source: Source{
			Dir:             jsonCfg.Source.Dir,
			NamespacePrefix: jsonCfg.Source.NamespacePrefix,
		},
		Snapshot: Snapshot{
			Enabled: jsonCfg.Snapshot.Enabled,
			Dir:     jsonCfg.Snapshot.Dir,
			File:    jsonCfg.Snapshot.File,
		},
		Cache: Cache{
			Driver:         jsonCfg.Cache.Driver,
			DSN:            jsonCfg.Cache.DSN,
			HTTPAddress:    jsonCfg.Cache.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Cache.RequestTimeout),
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
