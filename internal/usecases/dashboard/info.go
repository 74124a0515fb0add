package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unsafe"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var columnDtypes = map[string]string{
	domain.ColumnDate:      domain.DtypeDate,
	domain.ColumnRegion:    domain.DtypeString,
	domain.ColumnProduct:   domain.DtypeString,
	domain.ColumnUnitsSold: domain.DtypeFloat,
	domain.ColumnRevenue:   domain.DtypeFloat,
}

// DescribeTable monta o resumo de colunas da tabela: quantidade de linhas,
// valores não nulos e tipo por coluna e uma estimativa de memória.
func DescribeTable(table *domain.SalesTable) *domain.TableInfo {
	columns := domain.RequiredColumns
	if table != nil && len(table.Columns) > 0 {
		columns = table.Columns
	}

	info := &domain.TableInfo{
		Entries:     table.Len(),
		Columns:     make([]domain.ColumnInfo, 0, len(columns)),
		DtypeCounts: make(map[string]int),
	}

	for i, name := range columns {
		dtype := columnDtypes[name]
		info.Columns = append(info.Columns, domain.ColumnInfo{
			Index:        i,
			Name:         name,
			NonNullCount: nonNullCount(table, name),
			Dtype:        dtype,
		})
		info.DtypeCounts[dtype]++
	}

	info.MemoryUsage = utils.FormatBytes(memoryUsage(table))
	info.Text = renderInfoText(info)

	return info
}

func nonNullCount(table *domain.SalesTable, column string) int {
	if table == nil {
		return 0
	}

	count := 0
	for _, record := range table.Records {
		switch column {
		case domain.ColumnDate:
			if !record.Date.IsZero() {
				count++
			}
		case domain.ColumnRegion:
			if record.Region != "" {
				count++
			}
		case domain.ColumnProduct:
			if record.Product != "" {
				count++
			}
		case domain.ColumnUnitsSold:
			if !math.IsNaN(record.UnitsSold) {
				count++
			}
		case domain.ColumnRevenue:
			if !math.IsNaN(record.Revenue) {
				count++
			}
		}
	}
	return count
}

func memoryUsage(table *domain.SalesTable) uint64 {
	if table == nil {
		return 0
	}

	size := uint64(unsafe.Sizeof(domain.SalesRecord{})) * uint64(len(table.Records))
	for _, record := range table.Records {
		size += uint64(len(record.Region) + len(record.Product))
	}
	return size
}

func renderInfoText(info *domain.TableInfo) string {
	nameWidth := len("Column")
	for _, column := range info.Columns {
		nameWidth = max(nameWidth, len(column.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Entries: %d\n", info.Entries)
	fmt.Fprintf(&b, "Data columns (total %d columns):\n", len(info.Columns))
	fmt.Fprintf(&b, " #   %-*s  Non-Null Count  Dtype\n", nameWidth, "Column")
	fmt.Fprintf(&b, "---  %-*s  --------------  -----\n", nameWidth, strings.Repeat("-", len("Column")))
	for _, column := range info.Columns {
		fmt.Fprintf(&b, " %-3d %-*s  %-14s  %s\n",
			column.Index, nameWidth, column.Name,
			fmt.Sprintf("%d non-null", column.NonNullCount), column.Dtype)
	}

	dtypes := make([]string, 0, len(info.DtypeCounts))
	for dtype := range info.DtypeCounts {
		dtypes = append(dtypes, dtype)
	}
	sort.Strings(dtypes)

	parts := make([]string, 0, len(dtypes))
	for _, dtype := range dtypes {
		parts = append(parts, fmt.Sprintf("%s(%d)", dtype, info.DtypeCounts[dtype]))
	}

	fmt.Fprintf(&b, "dtypes: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(&b, "memory usage: %s", info.MemoryUsage)

	return b.String()
}
