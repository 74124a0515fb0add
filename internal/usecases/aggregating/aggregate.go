// Package aggregating calcula os indicadores e as séries dos gráficos sobre a tabela filtrada.
// Valores ausentes (NaN) são ignorados nas somas.
package aggregating

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Metrics calcula receita total, unidades totais e a quantidade de produtos e regiões distintos
func Metrics(table *domain.SalesTable) domain.MetricsSummary {
	var summary domain.MetricsSummary
	if table == nil {
		return summary
	}

	products := make(map[string]struct{})
	regions := make(map[string]struct{})

	for _, record := range table.Records {
		summary.TotalRevenue = addPresent(summary.TotalRevenue, record.Revenue)
		summary.TotalUnits = addPresent(summary.TotalUnits, record.UnitsSold)

		if record.Product != "" {
			products[record.Product] = struct{}{}
		}
		if record.Region != "" {
			regions[record.Region] = struct{}{}
		}
	}

	summary.DistinctProducts = len(products)
	summary.DistinctRegions = len(regions)

	return summary
}

// DailyRevenue agrupa por data e soma a receita, em ordem cronológica
func DailyRevenue(table *domain.SalesTable) domain.DailyRevenueSeries {
	if table.IsEmpty() {
		return domain.DailyRevenueSeries{}
	}

	totals := make(map[time.Time]float64)
	for _, record := range table.Records {
		totals[record.Date] = addPresent(totals[record.Date], record.Revenue)
	}

	series := make(domain.DailyRevenueSeries, 0, len(totals))
	for date, revenue := range totals {
		series = append(series, domain.DailyRevenuePoint{Date: date, Revenue: revenue})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// ProductUnits agrupa por produto e soma as unidades vendidas
func ProductUnits(table *domain.SalesTable) domain.ProductUnitsSeries {
	if table.IsEmpty() {
		return domain.ProductUnitsSeries{}
	}

	totals := make(map[string]float64)
	for _, record := range table.Records {
		if record.Product == "" {
			continue
		}
		totals[record.Product] = addPresent(totals[record.Product], record.UnitsSold)
	}

	series := make(domain.ProductUnitsSeries, 0, len(totals))
	for product, units := range totals {
		series = append(series, domain.ProductUnitsPoint{Product: product, Units: units})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Product < series[j].Product
	})

	return series
}

func addPresent(total, value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return total
	}
	return total + value
}
