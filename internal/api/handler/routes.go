package handler

import (
	"net/http"

	"github.com/vfg2006/ads-performance-api/infrastructure/repository"
	"github.com/vfg2006/ads-performance-api/internal/api/handler/router"
	"github.com/vfg2006/ads-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-performance-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func BrandMetrics(orchestrator syncing.Orchestrator, brandRepo repository.BrandRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/brands/:id/metrics",
			Method:  http.MethodGet,
			Handler: GetBrandMetrics(orchestrator, brandRepo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
