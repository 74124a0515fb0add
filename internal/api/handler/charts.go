package handler

import (
	"bytes"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type chartDrawer func(renderer *charting.Renderer, buf *bytes.Buffer, table *domain.SalesTable, format charting.Format) error

func drawDailyRevenue(renderer *charting.Renderer, buf *bytes.Buffer, table *domain.SalesTable, format charting.Format) error {
	return renderer.DailyRevenue(buf, aggregating.DailyRevenue(table), format)
}

func drawProductUnits(renderer *charting.Renderer, buf *bytes.Buffer, table *domain.SalesTable, format charting.Format) error {
	return renderer.ProductUnits(buf, aggregating.ProductUnits(table), format)
}

// GetDailyRevenueChart desenha a tendência de receita diária da seleção
func GetDailyRevenueChart(builder dashboard.Builder, renderer *charting.Renderer, format charting.Format) http.HandlerFunc {
	return chartHandler(builder, renderer, format, drawDailyRevenue)
}

// GetProductUnitsChart desenha as unidades vendidas por produto da seleção
func GetProductUnitsChart(builder dashboard.Builder, renderer *charting.Renderer, format charting.Format) http.HandlerFunc {
	return chartHandler(builder, renderer, format, drawProductUnits)
}

func chartHandler(builder dashboard.Builder, renderer *charting.Renderer, format charting.Format, draw chartDrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := builder.Filtered(r.Context(), selectionFromRequest(r))
		if err != nil {
			writeLoadError(w, r, err, builder.Source())
			return
		}

		if table.IsEmpty() {
			apiErrors.WriteError(w, apiErrors.ErrNoChartData, dashboard.NoChartsMessage, nil)
			return
		}

		var buf bytes.Buffer
		if err := draw(renderer, &buf, table, format); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrChartRendering, "Erro ao desenhar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar gráfico")
		}
	}
}
