package handler

import (
	"html/template"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

const (
	pathDailyRevenueChart = "/v1/charts/daily-revenue"
	pathProductUnitsChart = "/v1/charts/product-units"
	pathExportXLSX        = "/v1/data/export.xlsx"
	pathExportCSV         = "/v1/data/export.csv"
)

var noCache = []func(http.Handler) http.Handler{middleware.NoCache()}

func Healthcheck(cache CacheStatus) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cache),
		},
	}
}

func Dashboard(builder dashboard.Builder, templates *template.Template) []router.Route {
	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     DashboardPage(builder, templates),
			Middlewares: noCache,
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(builder),
			Middlewares: noCache,
		},
		{
			Path:        "/v1/options",
			Method:      http.MethodGet,
			Handler:     GetOptions(builder),
			Middlewares: noCache,
		},
	}
}

func Charts(builder dashboard.Builder, renderer *charting.Renderer) []router.Route {
	routes := []router.Route{}
	for _, format := range []charting.Format{charting.FormatSVG, charting.FormatPNG} {
		extension := "." + string(format)
		routes = append(routes,
			router.Route{
				Path:        pathDailyRevenueChart + extension,
				Method:      http.MethodGet,
				Handler:     GetDailyRevenueChart(builder, renderer, format),
				Middlewares: noCache,
			},
			router.Route{
				Path:        pathProductUnitsChart + extension,
				Method:      http.MethodGet,
				Handler:     GetProductUnitsChart(builder, renderer, format),
				Middlewares: noCache,
			},
		)
	}
	return routes
}

func Export(builder dashboard.Builder, exporter *exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    pathExportXLSX,
			Method:  http.MethodGet,
			Handler: ExportXLSX(builder, exporter),
		},
		{
			Path:    pathExportCSV,
			Method:  http.MethodGet,
			Handler: ExportCSV(builder, exporter),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
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
