// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"encoding/json"
	"math"
	"time"
)

// Nomes das colunas obrigatórias do arquivo de vendas
const (
	ColumnDate      = "tanggal"
	ColumnRegion    = "wilayah"
	ColumnProduct   = "produk"
	ColumnUnitsSold = "jumlah_terjual"
	ColumnRevenue   = "total_penjualan"
)

// RequiredColumns lista as colunas na ordem canônica
var RequiredColumns = []string{
	ColumnDate,
	ColumnRegion,
	ColumnProduct,
	ColumnUnitsSold,
	ColumnRevenue,
}

// SalesRecord representa uma linha do arquivo de vendas.
// UnitsSold e Revenue valem NaN quando o campo estava vazio ou inválido.
type SalesRecord struct {
	Date      time.Time
	Region    string
	Product   string
	UnitsSold float64
	Revenue   float64
}

type salesRecordJSON struct {
	Date      string   `json:"tanggal"`
	Region    string   `json:"wilayah"`
	Product   string   `json:"produk"`
	UnitsSold *float64 `json:"jumlah_terjual"`
	Revenue   *float64 `json:"total_penjualan"`
}

// MarshalJSON serializa valores ausentes (NaN) como null
func (r SalesRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(salesRecordJSON{
		Date:      r.Date.Format(time.DateOnly),
		Region:    r.Region,
		Product:   r.Product,
		UnitsSold: nullableFloat(r.UnitsSold),
		Revenue:   nullableFloat(r.Revenue),
	})
}

func nullableFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
