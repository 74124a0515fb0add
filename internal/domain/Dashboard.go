package domain

// Dashboard é o modelo de apresentação montado a cada interação
type Dashboard struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Source       string             `json:"source"`
	Selection    FilterSelection    `json:"selection"`
	Options      FacetOptions       `json:"options"`
	Metrics      *MetricsSummary    `json:"metrics,omitempty"`
	MetricCards  []MetricCard       `json:"metric_cards,omitempty"`
	InfoMessage  string             `json:"info_message,omitempty"`
	DailyRevenue DailyRevenueSeries `json:"daily_revenue,omitempty"`
	ProductUnits ProductUnitsSeries `json:"product_units,omitempty"`
	ChartWarning string             `json:"chart_warning,omitempty"`
	Rows         []SalesRecord      `json:"rows"`
	RowCount     int                `json:"row_count"`
	TableInfo    *TableInfo         `json:"table_info,omitempty"`
}

// HasCharts indica se os gráficos devem ser exibidos
func (d *Dashboard) HasCharts() bool {
	return d.ChartWarning == "" && (len(d.DailyRevenue) > 0 || len(d.ProductUnits) > 0)
}
