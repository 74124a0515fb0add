package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ExportXLSX baixa as linhas filtradas como planilha
func ExportXLSX(builder dashboard.Builder, exporter *exporting.Exporter) http.HandlerFunc {
	return exportHandler(builder, "xlsx", exporting.ContentTypeXLSX, exporter.XLSX)
}

// ExportCSV baixa as linhas filtradas como CSV
func ExportCSV(builder dashboard.Builder, exporter *exporting.Exporter) http.HandlerFunc {
	return exportHandler(builder, "csv", exporting.ContentTypeCSV, exporter.CSV)
}

func exportHandler(
	builder dashboard.Builder,
	extension string,
	contentType string,
	write func(io.Writer, *domain.SalesTable) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selection := selectionFromRequest(r)

		table, err := builder.Filtered(r.Context(), selection)
		if err != nil {
			writeLoadError(w, r, err, builder.Source())
			return
		}

		var buf bytes.Buffer
		if err := write(&buf, table); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar arquivo de exportação")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar arquivo", nil)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"region":  selection.Region,
			"product": selection.Product,
			"rows":    table.Len(),
		}).Info("Exportação gerada")

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", exporting.FileName(selection, extension)))
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar arquivo de exportação")
		}
	}
}
