package exporting_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/xuri/excelize/v2"
)

func sampleTable() *domain.SalesTable {
	return domain.NewSalesTable([]domain.SalesRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Region: "Jawa Barat", Product: "Kopi", UnitsSold: 2, Revenue: 100.5},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Region: "Bali", Product: "Teh", UnitsSold: math.NaN(), Revenue: 40},
	})
}

func TestExporterXLSX(t *testing.T) {
	exporter := exporting.NewExporter("")

	var buf bytes.Buffer
	require.NoError(t, exporter.XLSX(&buf, sampleTable()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{exporting.DefaultSheetName}, f.GetSheetList())

	rows, err := f.GetRows(exporting.DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.RequiredColumns, rows[0])
	assert.Equal(t, []string{"2024-01-01", "Jawa Barat", "Kopi", "2", "100.5"}, rows[1])
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "40", rows[2][4])

	for col, want := range map[string]float64{"A": 14, "C": 20, "E": 18} {
		width, err := f.GetColWidth(exporting.DefaultSheetName, col)
		require.NoError(t, err)
		assert.Equal(t, want, width, "largura da coluna %s", col)
	}
}

func TestExporterXLSXEmptyTable(t *testing.T) {
	exporter := exporting.NewExporter("Vendas")

	var buf bytes.Buffer
	require.NoError(t, exporter.XLSX(&buf, domain.NewSalesTable(nil)))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Vendas")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExporterCSV(t *testing.T) {
	exporter := exporting.NewExporter("")

	var buf bytes.Buffer
	require.NoError(t, exporter.CSV(&buf, sampleTable()))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"tanggal", "wilayah", "produk", "jumlah_terjual", "total_penjualan"},
		{"2024-01-01", "Jawa Barat", "Kopi", "2", "100.5"},
		{"2024-01-02", "Bali", "Teh", "", "40"},
	}, records)
}

func TestExporterCSVLoadsBack(t *testing.T) {
	exporter := exporting.NewExporter("")

	var buf bytes.Buffer
	require.NoError(t, exporter.CSV(&buf, sampleTable()))

	table, err := loading.ParseCSV(context.Background(), &buf, "export.csv")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, sampleTable().Records[0], table.Records[0])
	assert.True(t, math.IsNaN(table.Records[1].UnitsSold))
}

func TestSheetNameIsTruncated(t *testing.T) {
	exporter := exporting.NewExporter("Data Penjualan Produk Per Wilayah 2024")

	assert.Len(t, []rune(exporter.SheetName()), 31)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name      string
		selection domain.FilterSelection
		expected  string
	}{
		{name: "sem filtro", selection: domain.NewFilterSelection("", ""), expected: "penjualan_produk.xlsx"},
		{name: "região", selection: domain.NewFilterSelection("Jawa Barat", domain.AllValues), expected: "penjualan_produk_Jawa-Barat.xlsx"},
		{name: "ambos", selection: domain.NewFilterSelection("Bali", "Kopi/Susu"), expected: "penjualan_produk_Bali_Kopi-Susu.xlsx"},
		{name: "somente símbolos", selection: domain.NewFilterSelection("***", ""), expected: "penjualan_produk_filter.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exporting.FileName(tt.selection, "xlsx"))
		})
	}
}
