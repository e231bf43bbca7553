package config

import "time"

const (
	defaultHTTPAddress     = ":5000"
	defaultRequestTimeout  = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second

	defaultEngineBaseURL    = "https://earthengine.googleapis.com"
	defaultEngineAPIVersion = "v1"
	defaultEngineProject    = "earthengine-legacy"
	defaultEngineTimeout    = 45 * time.Second

	defaultRegionDataset  = "FAO/GAUL/2015/level2"
	defaultDistrictField  = "ADM2_NAME"
	defaultDistrictName   = "Bengkalis"
	defaultProvinceField  = "ADM1_NAME"
	defaultProvinceName   = "Riau"
	defaultResolveTimeout = 60 * time.Second

	defaultEnvFile = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: "geowaqf",
		},
		Server: Server{
			HTTPAddress:        defaultHTTPAddress,
			RequestTimeout:     defaultRequestTimeout,
			ShutdownTimeout:    defaultShutdownTimeout,
			CORSAllowedOrigins: []string{"*"},
		},
		Engine: Engine{
			BaseURL:        defaultEngineBaseURL,
			APIVersion:     defaultEngineAPIVersion,
			Project:        defaultEngineProject,
			RequestTimeout: defaultEngineTimeout,
		},
		Region: Region{
			Dataset:        defaultRegionDataset,
			DistrictField:  defaultDistrictField,
			DistrictName:   defaultDistrictName,
			ProvinceField:  defaultProvinceField,
			ProvinceName:   defaultProvinceName,
			ResolveTimeout: defaultResolveTimeout,
		},
	}
}
