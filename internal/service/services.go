package service

import (
	"github.com/geo-waqf/geowaqf/internal/adapter"
	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/logger"
)

type Services struct {
	RegionService   RegionService
	AnalysisService AnalysisService
	MCEService      MCEService
	AppInfoService  AppInfoService
}

func NewServices(engine adapter.EngineAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	region := NewRegionService(engine, cfg.Region, logger)

	return &Services{
		RegionService:   region,
		AnalysisService: NewAnalysisService(engine, region, logger),
		MCEService:      NewMCEService(engine, region, logger),
		AppInfoService:  appInfo,
	}, nil
}
