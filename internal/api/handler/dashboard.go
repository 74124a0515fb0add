package handler

import (
	"bytes"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/web"
)

const dashboardTemplate = "dashboard.html"

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format(time.DateOnly)
	},
	"formatNumber": func(v float64) string {
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}

// ParseTemplates carrega os templates embutidos no binário
func ParseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(web.TemplatesFS, "templates/*.html")
}

type pageOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Title                string
	Description          string
	Error                string
	Dashboard            *domain.Dashboard
	RegionOptions        []pageOption
	ProductOptions       []pageOption
	Columns              []string
	DailyRevenueChartURL template.URL
	ProductUnitsChartURL template.URL
	ExportXLSXURL        template.URL
	ExportCSVURL         template.URL
}

// DashboardPage renderiza a página HTML completa para a seleção da query string.
// Falhas de carga exibem apenas a mensagem de erro.
func DashboardPage(builder dashboard.Builder, templates *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selection := selectionFromRequest(r)
		data := pageData{
			Title:       dashboard.Title,
			Description: dashboard.Description,
		}

		status := http.StatusOK
		result, err := builder.Build(r.Context(), selection)
		if err != nil {
			status = apiErrors.StatusFor(loading.ErrorCode(err))
			data.Error = loading.UserMessage(err, builder.Source())
		} else {
			data.fill(result)
		}

		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, dashboardTemplate, data); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar página do dashboard")
			http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar página do dashboard")
		}
	}
}

func (p *pageData) fill(result *domain.Dashboard) {
	p.Dashboard = result
	p.Columns = domain.RequiredColumns
	p.RegionOptions = pageOptions(result.Options.Regions, result.Selection.Region, dashboard.AllRegionsLabel)
	p.ProductOptions = pageOptions(result.Options.Products, result.Selection.Product, dashboard.AllProductsLabel)

	query := "?" + selectionQuery(result.Selection)
	p.DailyRevenueChartURL = template.URL(pathDailyRevenueChart + ".svg" + query)
	p.ProductUnitsChartURL = template.URL(pathProductUnitsChart + ".svg" + query)
	p.ExportXLSXURL = template.URL(pathExportXLSX + query)
	p.ExportCSVURL = template.URL(pathExportCSV + query)
}

func pageOptions(values []string, selected string, allLabel string) []pageOption {
	options := make([]pageOption, 0, len(values))
	for _, value := range values {
		options = append(options, pageOption{
			Value:    value,
			Label:    dashboard.OptionLabel(value, allLabel),
			Selected: value == selected,
		})
	}
	return options
}

// GetDashboard retorna o dashboard da seleção em JSON
func GetDashboard(builder dashboard.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := builder.Build(r.Context(), selectionFromRequest(r))
		if err != nil {
			writeLoadError(w, r, err, builder.Source())
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// GetOptions retorna as opções dos dois seletores
func GetOptions(builder dashboard.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := builder.Options(r.Context())
		if err != nil {
			writeLoadError(w, r, err, builder.Source())
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}
