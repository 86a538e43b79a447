package handler

import (
	"net/http"

	"github.com/vfg2006/finance-copilot-api/internal/api/handler/router"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/briefing"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/recommending"
)

func Healthcheck(dataSource string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dataSource),
		},
	}
}

func Briefing(service briefing.BriefingService, defaults CopilotDefaults) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/copilot/briefing",
			Method:  http.MethodGet,
			Handler: GetDailyBriefing(service, defaults),
		},
	}
}

func Anomalies(service detecting.AnomalyService, defaults CopilotDefaults) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/copilot/anomalies",
			Method:  http.MethodGet,
			Handler: GetAnomalies(service, defaults),
		},
		{
			Path:    "/v1/copilot/anomalies/:id/acknowledge",
			Method:  http.MethodPost,
			Handler: AcknowledgeAnomaly(service),
		},
	}
}

func Recommendations(service recommending.RecommendationService, defaults CopilotDefaults) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/copilot/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(service, defaults),
		},
		{
			Path:    "/v1/copilot/recommendations/:id/task",
			Method:  http.MethodPost,
			Handler: CreateTaskFromRecommendation(service),
		},
		{
			Path:    "/v1/copilot/recommendations/:id/dismiss",
			Method:  http.MethodPost,
			Handler: DismissRecommendation(service),
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
