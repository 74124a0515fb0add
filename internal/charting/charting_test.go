package charting

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "svg", expected: FormatSVG},
		{input: ".PNG", expected: FormatPNG},
		{input: "jpg", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	assert.Equal(t, "image/png", FormatPNG.ContentType())
	assert.Equal(t, "image/svg+xml", FormatSVG.ContentType())
}

func TestDailyRevenue(t *testing.T) {
	tests := []struct {
		name   string
		series domain.DailyRevenueSeries
	}{
		{
			name: "vários dias",
			series: domain.DailyRevenueSeries{
				{Date: day(1), Revenue: 250},
				{Date: day(2), Revenue: 50},
				{Date: day(4), Revenue: 1200},
			},
		},
		{
			name:   "um único dia",
			series: domain.DailyRevenueSeries{{Date: day(1), Revenue: 100}},
		},
		{
			name: "receita constante",
			series: domain.DailyRevenueSeries{
				{Date: day(1), Revenue: 80},
				{Date: day(2), Revenue: 80},
			},
		},
	}

	renderer := NewRenderer(640, 400)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svg bytes.Buffer
			require.NoError(t, renderer.DailyRevenue(&svg, tt.series, FormatSVG))
			assert.Contains(t, svg.String(), "<svg")
			assert.Contains(t, svg.String(), DailyRevenueTitle)

			var png bytes.Buffer
			require.NoError(t, renderer.DailyRevenue(&png, tt.series, FormatPNG))
			assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))
		})
	}
}

func TestProductUnits(t *testing.T) {
	tests := []struct {
		name   string
		series domain.ProductUnitsSeries
	}{
		{
			name: "vários produtos",
			series: domain.ProductUnitsSeries{
				{Product: "Kopi", Units: 12},
				{Product: "Teh", Units: 30},
			},
		},
		{
			name:   "um produto",
			series: domain.ProductUnitsSeries{{Product: "Kopi", Units: 5}},
		},
		{
			name: "valores iguais",
			series: domain.ProductUnitsSeries{
				{Product: "Kopi", Units: 7},
				{Product: "Teh", Units: 7},
			},
		},
	}

	renderer := NewRenderer(640, 400)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svg bytes.Buffer
			require.NoError(t, renderer.ProductUnits(&svg, tt.series, FormatSVG))
			assert.Contains(t, svg.String(), "<svg")
			assert.Contains(t, svg.String(), ProductUnitsTitle)
		})
	}
}

func TestEmptySeries(t *testing.T) {
	renderer := NewRenderer(640, 400)

	assert.ErrorIs(t, renderer.DailyRevenue(&bytes.Buffer{}, nil, FormatSVG), ErrNoData)
	assert.ErrorIs(t, renderer.ProductUnits(&bytes.Buffer{}, domain.ProductUnitsSeries{}, FormatPNG), ErrNoData)
}

func TestValueRange(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		min, max float64
	}{
		{name: "positivos", values: []float64{10, 95}, min: 0, max: 100},
		{name: "zeros", values: []float64{0, 0}, min: 0, max: 2},
		{name: "um valor", values: []float64{7}, min: 0, max: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valueRange(tt.values)
			assert.Equal(t, tt.min, r.Min)
			assert.InDelta(t, tt.max, r.Max, 1e-9)
		})
	}
}

func TestDateRangeSingleDay(t *testing.T) {
	r := dateRange([]time.Time{day(1)})

	assert.Less(t, r.Min, r.Max)
}
