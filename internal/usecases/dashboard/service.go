package dashboard

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/builder.go -package=mocks

const (
	Title       = "Dashboard Analisis Penjualan Produk"
	Description = "Aplikasi interaktif untuk melihat tren dan performa penjualan berdasarkan filter."

	NoDataMessage    = "Tidak ada data untuk kombinasi filter yang dipilih. Silakan sesuaikan filter."
	NoChartsMessage  = "Tidak ada data yang tersedia untuk visualisasi berdasarkan filter yang dipilih."
	LabelRevenue     = "Total Penjualan"
	LabelUnits       = "Total Unit Terjual"
	LabelProducts    = "Jumlah Produk Unik"
	LabelRegions     = "Jumlah Wilayah Terpilih"
	AllRegionsLabel  = "Semua Wilayah"
	AllProductsLabel = "Semua Produk"
)

// Builder executa o pipeline carga → filtro → agregações para uma seleção
type Builder interface {
	Build(ctx context.Context, selection domain.FilterSelection) (*domain.Dashboard, error)
	Filtered(ctx context.Context, selection domain.FilterSelection) (*domain.SalesTable, error)
	Options(ctx context.Context) (*domain.FacetOptions, error)
	Source() string
}

type Service struct {
	loader loading.TableLoader
}

func NewService(loader loading.TableLoader) Builder {
	return &Service{
		loader: loader,
	}
}

func (s *Service) Source() string {
	return s.loader.Source()
}

// Build monta o dashboard completo. Falhas de carga interrompem o pipeline
// e nenhuma etapa posterior é executada.
func (s *Service) Build(ctx context.Context, selection domain.FilterSelection) (*domain.Dashboard, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"region":  selection.Region,
		"product": selection.Product,
	})

	table, err := s.loader.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar dados de vendas")
		return nil, err
	}

	filtered := filtering.Apply(table, selection)

	dashboard := &domain.Dashboard{
		Title:       Title,
		Description: Description,
		Source:      s.loader.Source(),
		Selection:   selection,
		Options:     filtering.Options(table),
		Rows:        filtered.Records,
		RowCount:    filtered.Len(),
		TableInfo:   DescribeTable(table),
	}

	if !filtering.IsValid(dashboard.Options, selection) {
		logger.Warn("Seleção contém valores fora das opções disponíveis")
	}

	if filtered.IsEmpty() {
		logger.Info("Nenhuma linha para a seleção informada")
		dashboard.InfoMessage = NoDataMessage
		dashboard.ChartWarning = NoChartsMessage
		return dashboard, nil
	}

	metrics := aggregating.Metrics(filtered)
	dashboard.Metrics = &metrics
	dashboard.MetricCards = MetricCards(metrics)
	dashboard.DailyRevenue = aggregating.DailyRevenue(filtered)
	dashboard.ProductUnits = aggregating.ProductUnits(filtered)

	logger.WithField("rows", filtered.Len()).Debug("Dashboard montado")

	return dashboard, nil
}

// Filtered devolve apenas a tabela filtrada, usada pelos gráficos e exportações
func (s *Service) Filtered(ctx context.Context, selection domain.FilterSelection) (*domain.SalesTable, error) {
	table, err := s.loader.Load(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar dados de vendas")
		return nil, err
	}

	return filtering.Apply(table, selection), nil
}

func (s *Service) Options(ctx context.Context) (*domain.FacetOptions, error) {
	table, err := s.loader.Load(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar dados de vendas")
		return nil, err
	}

	options := filtering.Options(table)
	return &options, nil
}

// MetricCards formata os quatro indicadores na ordem exibida na página
func MetricCards(metrics domain.MetricsSummary) []domain.MetricCard {
	return []domain.MetricCard{
		{Label: LabelRevenue, Value: utils.FormatCurrency(metrics.TotalRevenue)},
		{Label: LabelUnits, Value: utils.FormatThousands(metrics.TotalUnits)},
		{Label: LabelProducts, Value: utils.FormatCount(metrics.DistinctProducts)},
		{Label: LabelRegions, Value: utils.FormatCount(metrics.DistinctRegions)},
	}
}

// OptionLabel traduz o sentinela para o rótulo exibido no seletor
func OptionLabel(value, allLabel string) string {
	if value == domain.AllValues {
		return allLabel
	}
	return value
}
