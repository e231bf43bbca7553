package main

import (
	"context"
	"fmt"
	"io"

	"github.com/geo-waqf/geowaqf/internal/adapter"
	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/handler"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/server"
	"github.com/geo-waqf/geowaqf/internal/service"
	"github.com/geo-waqf/geowaqf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("geowaqf-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("engine", cfg.Engine.BaseURL).
		Str("project", cfg.Engine.Project).
		Str("district", cfg.Region.DistrictName).
		Msg("received configs")

	engine, closers := newEngine(cfg.Engine, log)

	services, err := service.NewServices(engine, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	// The server starts even when the region cannot be resolved; the data
	// endpoints then answer with the error envelope.
	if !engine.Authenticated() {
		log.Warn().Msg("skipping region lookup without earth engine credentials")
	} else if err := services.RegionService.Resolve(context.Background()); err != nil {
		log.Error().Err(err).Msg("region of interest is unavailable")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, closers...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newEngine authenticates against the remote engine. Without usable
// credentials it falls back to a degraded engine unless they are required.
func newEngine(cfg config.Engine, log *logger.Logger) (adapter.EngineAdapter, []io.Closer) {
	account, err := adapter.LoadServiceAccount(cfg)
	if err != nil {
		if cfg.RequireCredentials {
			log.Fatal().Err(err).Msg("error loading service account")
		}
		log.Warn().Err(err).Msg("running without earth engine credentials")
		return adapter.NewDegradedAdapter(err), nil
	}

	engine, err := adapter.NewHTTPEngineAdapter(cfg, account)
	if err != nil {
		_ = account.Close()
		log.Fatal().Err(err).Msg("error creating engine adapter")
	}

	log.Info().
		Str("source", account.Source).
		Str("client_email", account.ClientEmail).
		Msg("earth engine credentials loaded")

	return engine, []io.Closer{account}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
