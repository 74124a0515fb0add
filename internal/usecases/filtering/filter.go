// Package filtering aplica a seleção de região e produto sobre a tabela de vendas
package filtering

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Apply devolve uma cópia da tabela com as linhas que atendem à seleção.
// A ordem original é preservada e os predicados usam igualdade exata.
func Apply(table *domain.SalesTable, selection domain.FilterSelection) *domain.SalesTable {
	if table == nil {
		return domain.NewSalesTable(nil)
	}

	records := make([]domain.SalesRecord, 0, table.Len())
	for _, record := range table.Records {
		if !selection.AllRegions() && record.Region != selection.Region {
			continue
		}
		if !selection.AllProducts() && record.Product != selection.Product {
			continue
		}
		records = append(records, record)
	}

	columns := make([]string, len(table.Columns))
	copy(columns, table.Columns)

	return &domain.SalesTable{
		Columns: columns,
		Records: records,
	}
}

// Options monta as opções dos seletores a partir da tabela completa
func Options(table *domain.SalesTable) domain.FacetOptions {
	regions := make([]string, 0)
	products := make([]string, 0)

	if table != nil {
		regions = distinct(table.Records, func(r domain.SalesRecord) string { return r.Region })
		products = distinct(table.Records, func(r domain.SalesRecord) string { return r.Product })
	}

	return domain.FacetOptions{
		Regions:  append([]string{domain.AllValues}, regions...),
		Products: append([]string{domain.AllValues}, products...),
	}
}

// distinct retorna os valores não vazios ordenados
func distinct(records []domain.SalesRecord, value func(domain.SalesRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)

	for _, record := range records {
		v := value(record)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}

// IsValid indica se a seleção usa apenas valores oferecidos nas opções
func IsValid(options domain.FacetOptions, selection domain.FilterSelection) bool {
	return contains(options.Regions, selection.Region) && contains(options.Products, selection.Product)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
