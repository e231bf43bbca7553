package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		RateLimitRequests  int      `json:"rate_limit_requests"`
		RateLimitWindow    Duration `json:"rate_limit_window"`
	} `json:"server,omitempty"`

	Engine struct {
		BaseURL             string   `json:"base_url"`
		APIVersion          string   `json:"api_version"`
		Project             string   `json:"project"`
		RequestTimeout      Duration `json:"request_timeout"`
		ServiceAccountFile  string   `json:"service_account_file"`
		CredentialsTempPath string   `json:"credentials_temp_path"`
		RequireCredentials  bool     `json:"require_credentials"`
	} `json:"engine,omitempty"`

	Region struct {
		Dataset        string   `json:"dataset"`
		DistrictField  string   `json:"district_field"`
		DistrictName   string   `json:"district_name"`
		ProvinceField  string   `json:"province_field"`
		ProvinceName   string   `json:"province_name"`
		ResolveTimeout Duration `json:"resolve_timeout"`
	} `json:"region,omitempty"`
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
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			RateLimitRequests:  jsonCfg.Server.RateLimitRequests,
			RateLimitWindow:    time.Duration(jsonCfg.Server.RateLimitWindow),
		},
		Engine: Engine{
			BaseURL:             jsonCfg.Engine.BaseURL,
			APIVersion:          jsonCfg.Engine.APIVersion,
			Project:             jsonCfg.Engine.Project,
			RequestTimeout:      time.Duration(jsonCfg.Engine.RequestTimeout),
			ServiceAccountFile:  jsonCfg.Engine.ServiceAccountFile,
			CredentialsTempPath: jsonCfg.Engine.CredentialsTempPath,
			RequireCredentials:  jsonCfg.Engine.RequireCredentials,
		},
		Region: Region{
			Dataset:        jsonCfg.Region.Dataset,
			DistrictField:  jsonCfg.Region.DistrictField,
			DistrictName:   jsonCfg.Region.DistrictName,
			ProvinceField:  jsonCfg.Region.ProvinceField,
			ProvinceName:   jsonCfg.Region.ProvinceName,
			ResolveTimeout: time.Duration(jsonCfg.Region.ResolveTimeout),
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
