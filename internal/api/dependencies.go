package api

import (
	"github.com/DiegoCorrea07/CoreMVC/internal/common"
	"github.com/DiegoCorrea07/CoreMVC/internal/config"
	"github.com/DiegoCorrea07/CoreMVC/internal/db"
	"github.com/DiegoCorrea07/CoreMVC/internal/db/repositories"
	"github.com/DiegoCorrea07/CoreMVC/internal/logging"
	"github.com/DiegoCorrea07/CoreMVC/internal/metrics"
	"github.com/DiegoCorrea07/CoreMVC/internal/services"
)

type Repositories struct {
	EventRoutes    *repositories.EventRouteRepository
	RealCoverage   *repositories.RealCoverageRepository
	CoverageAlerts *repositories.CoverageAlertRepository
}

type Services struct {
	Cache    common.CacheInterface
	Coverage *services.CoverageService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		EventRoutes:    repositories.NewEventRouteRepository(db.DB),
		RealCoverage:   repositories.NewRealCoverageRepository(db.PgDB),
		CoverageAlerts: repositories.NewCoverageAlertRepository(db.PgDB),
	}

	var cacheSvc common.CacheInterface
	if config.CacheBackend() == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Warn("Redis cache unavailable, falling back to in-memory cache", "error", err.Error())
			cacheSvc = common.NewCacheService(300, 600)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(300, 600)
	}

	covSvc := services.NewCoverageService(
		repos.EventRoutes,
		repos.RealCoverage,
		repos.CoverageAlerts,
		cacheSvc,
		metricsReg,
		config.RecordOnView(),
	)

	return &Dependencies{
		Repo: repos,
		Services: &Services{
			Cache:    cacheSvc,
			Coverage: covSvc,
		},
	}, nil
}
