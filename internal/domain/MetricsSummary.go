package domain

import "time"

// MetricsSummary contém os indicadores calculados sobre a tabela filtrada
type MetricsSummary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalUnits       float64 `json:"total_units"`
	DistinctProducts int     `json:"distinct_products"`
	DistinctRegions  int     `json:"distinct_regions"`
}

// MetricCard é um indicador já formatado para exibição
type MetricCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DailyRevenuePoint é a receita somada de uma data
type DailyRevenuePoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// DailyRevenueSeries é ordenada de forma crescente por data
type DailyRevenueSeries []DailyRevenuePoint

// Total soma a receita de todos os pontos
func (s DailyRevenueSeries) Total() float64 {
	var total float64
	for _, p := range s {
		total += p.Revenue
	}
	return total
}

// ProductUnitsPoint é o total de unidades vendidas de um produto
type ProductUnitsPoint struct {
	Product string  `json:"product"`
	Units   float64 `json:"units"`
}

// ProductUnitsSeries possui um ponto por produto distinto
type ProductUnitsSeries []ProductUnitsPoint
