package handler

import (
	"net/http"

	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/api/handler/router"
	"github.com/vfg2006/organic-report/internal/usecases/reporting"
)

func Healthcheck(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Report(service reporting.ReportService, opts animation.Options) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: ReportPage(service, opts),
		},
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
	}
}

func Dataset(service reporting.ReportService, reloader DatasetReloader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(service, reloader),
		},
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(service, reloader),
		},
	}
}
