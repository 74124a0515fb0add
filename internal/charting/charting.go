// Package charting desenha os gráficos do dashboard em SVG ou PNG
package charting

import (
	"errors"
	"io"
	"math"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DailyRevenueTitle = "Tren Total Penjualan Harian"
	DailyRevenueXName = "Tanggal"
	DailyRevenueYName = "Total Penjualan ($)"

	ProductUnitsTitle = "Total Jumlah Terjual per Produk"
	ProductUnitsXName = "Produk"
	ProductUnitsYName = "Jumlah Terjual (Unit)"
)

var (
	ErrNoData        = errors.New("nenhum dado para o gráfico")
	ErrInvalidFormat = errors.New("formato de gráfico não suportado")
)

// Format é o formato de saída da imagem
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat aceita "svg" ou "png", com ou sem ponto
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(value, "."))) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", ErrInvalidFormat
	}
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

var (
	lineColor = drawing.ColorFromHex("1f77b4")
	barColor  = drawing.ColorFromHex("636efa")
	gridStyle = chart.Style{
		StrokeColor:     drawing.ColorFromHex("d9d9d9"),
		StrokeWidth:     1,
		StrokeDashArray: []float64{4, 4},
	}
)

// Renderer desenha os gráficos com dimensões fixas
type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// DailyRevenue desenha a linha de receita diária com marcadores nos pontos
func (r *Renderer) DailyRevenue(w io.Writer, series domain.DailyRevenueSeries, format Format) error {
	if len(series) == 0 {
		return ErrNoData
	}

	xs := make([]time.Time, 0, len(series))
	ys := make([]float64, 0, len(series))
	for _, point := range series {
		xs = append(xs, point.Date)
		ys = append(ys, point.Revenue)
	}

	graph := chart.Chart{
		Title:      DailyRevenueTitle,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           DailyRevenueXName,
			ValueFormatter: chart.TimeValueFormatterWithFormat(time.DateOnly),
			Range:          dateRange(xs),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           DailyRevenueYName,
			ValueFormatter: thousandsFormatter,
			Range:          valueRange(ys),
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    DailyRevenueYName,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    4,
				},
			},
		},
	}

	return graph.Render(format.provider(), w)
}

// ProductUnits desenha uma barra por produto com o total de unidades
func (r *Renderer) ProductUnits(w io.Writer, series domain.ProductUnitsSeries, format Format) error {
	if len(series) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(series))
	ys := make([]float64, 0, len(series))
	for _, point := range series {
		bars = append(bars, chart.Value{
			Label: point.Product,
			Value: point.Units,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
		ys = append(ys, point.Units)
	}

	graph := chart.BarChart{
		Title:      ProductUnitsTitle,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth(r.width, len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 24, Bottom: 16}},
		YAxis: chart.YAxis{
			Name:           ProductUnitsYName,
			ValueFormatter: thousandsFormatter,
			Range:          valueRange(ys),
			GridMajorStyle: gridStyle,
		},
		Bars: bars,
	}

	return graph.Render(format.provider(), w)
}

func thousandsFormatter(v interface{}) string {
	if value, ok := v.(float64); ok {
		return utils.FormatThousands(value)
	}
	return ""
}

// dateRange abre meio dia de cada lado quando há uma única data
func dateRange(dates []time.Time) *chart.ContinuousRange {
	minDate, maxDate := dates[0], dates[0]
	for _, date := range dates[1:] {
		if date.Before(minDate) {
			minDate = date
		}
		if date.After(maxDate) {
			maxDate = date
		}
	}

	if minDate.Equal(maxDate) {
		minDate = minDate.Add(-12 * time.Hour)
		maxDate = maxDate.Add(12 * time.Hour)
	}

	return &chart.ContinuousRange{
		Min: chart.TimeToFloat64(minDate),
		Max: chart.TimeToFloat64(maxDate),
	}
}

// valueRange parte de zero para valores não negativos e nunca tem amplitude nula
func valueRange(values []float64) *chart.ContinuousRange {
	minValue, maxValue := math.MaxFloat64, -math.MaxFloat64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		minValue = math.Min(minValue, v)
		maxValue = math.Max(maxValue, v)
	}

	if minValue > maxValue {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}

	if minValue >= 0 {
		minValue = 0
	}
	if maxValue <= minValue {
		maxValue = minValue + 1
	}

	return &chart.ContinuousRange{Min: minValue, Max: niceCeil(maxValue)}
}

func niceCeil(v float64) float64 {
	if v <= 0 {
		return v
	}

	v *= 1.05
	magnitude := math.Pow(10, math.Floor(math.Log10(v)))
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if step*magnitude >= v {
			return step * magnitude
		}
	}
	return 10 * magnitude
}

func barWidth(width, bars int) int {
	if bars == 0 {
		return 0
	}
	return max(8, min(80, (width-120)/(bars*2)))
}
