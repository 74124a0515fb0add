// Package exporting gera arquivos para download com as linhas filtradas
package exporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv; charset=utf-8"

	DefaultSheetName = "Data Penjualan"
	maxSheetName     = 31
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

type columnWidth struct {
	start, end string
	width      float64
}

var columnWidths = []columnWidth{
	{start: "A", end: "A", width: 14},
	{start: "B", end: "C", width: 20},
	{start: "D", end: "E", width: 18},
}

// Exporter escreve a tabela filtrada em XLSX ou CSV
type Exporter struct {
	sheetName string
}

func NewExporter(sheetName string) *Exporter {
	sheetName = strings.TrimSpace(sheetName)
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if len([]rune(sheetName)) > maxSheetName {
		sheetName = string([]rune(sheetName)[:maxSheetName])
	}
	return &Exporter{sheetName: sheetName}
}

func (e *Exporter) SheetName() string {
	return e.sheetName
}

// XLSX escreve uma planilha com cabeçalho em negrito e uma linha por registro.
// Valores ausentes ficam como células vazias.
func (e *Exporter) XLSX(w io.Writer, table *domain.SalesTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", e.sheetName); err != nil {
		return errors.Wrap(err, "erro ao renomear planilha")
	}

	for i, header := range domain.RequiredColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(e.sheetName, cell, header); err != nil {
			return errors.Wrapf(err, "erro ao escrever cabeçalho %s", header)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar estilo do cabeçalho")
	}
	if err := f.SetRowStyle(e.sheetName, 1, 1, headerStyle); err != nil {
		return errors.Wrap(err, "erro ao aplicar estilo do cabeçalho")
	}

	if table != nil {
		for i, record := range table.Records {
			row := i + 2
			values := []interface{}{
				record.Date.Format(time.DateOnly),
				record.Region,
				record.Product,
				cellNumber(record.UnitsSold),
				cellNumber(record.Revenue),
			}

			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(e.sheetName, cell, &values); err != nil {
				return errors.Wrapf(err, "erro ao escrever linha %d", row)
			}
		}
	}

	for _, width := range columnWidths {
		if err := f.SetColWidth(e.sheetName, width.start, width.end, width.width); err != nil {
			return errors.Wrapf(err, "erro ao ajustar largura das colunas %s:%s", width.start, width.end)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "erro ao gravar planilha")
	}
	return nil
}

// CSV escreve a tabela no mesmo layout aceito pelo carregador
func (e *Exporter) CSV(w io.Writer, table *domain.SalesTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(domain.RequiredColumns); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	if table != nil {
		for _, record := range table.Records {
			err := writer.Write([]string{
				record.Date.Format(time.DateOnly),
				record.Region,
				record.Product,
				formatNumber(record.UnitsSold),
				formatNumber(record.Revenue),
			})
			if err != nil {
				return errors.Wrap(err, "erro ao escrever linha")
			}
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao gravar CSV")
}

// FileName monta o nome do arquivo de download a partir da seleção
func FileName(selection domain.FilterSelection, extension string) string {
	parts := []string{"penjualan_produk"}
	if !selection.AllRegions() {
		parts = append(parts, sanitize(selection.Region))
	}
	if !selection.AllProducts() {
		parts = append(parts, sanitize(selection.Product))
	}
	return fmt.Sprintf("%s.%s", strings.Join(parts, "_"), extension)
}

func sanitize(value string) string {
	cleaned := strings.Trim(unsafeFileChars.ReplaceAllString(value, "-"), "-")
	if cleaned == "" {
		return "filter"
	}
	return cleaned
}

func cellNumber(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
