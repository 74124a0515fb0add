package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func fixture() *domain.SalesTable {
	return domain.NewSalesTable([]domain.SalesRecord{
		{Date: day(1), Region: "A", Product: "X", UnitsSold: 1, Revenue: 10},
		{Date: day(1), Region: "B", Product: "Y", UnitsSold: 2, Revenue: 20},
		{Date: day(2), Region: "A", Product: "Y", UnitsSold: 3, Revenue: 30},
		{Date: day(2), Region: "B", Product: "X", UnitsSold: 4, Revenue: 40},
		{Date: day(3), Region: "A", Product: "X", UnitsSold: 5, Revenue: 50},
	})
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		selection domain.FilterSelection
		want      []int // índices esperados do fixture
	}{
		{
			name:      "Todos/Todos - deve devolver a tabela inteira na mesma ordem",
			selection: domain.NewFilterSelection(domain.AllValues, domain.AllValues),
			want:      []int{0, 1, 2, 3, 4},
		},
		{
			name:      "Seleção vazia normaliza para todos",
			selection: domain.NewFilterSelection("", ""),
			want:      []int{0, 1, 2, 3, 4},
		},
		{
			name:      "Somente região",
			selection: domain.NewFilterSelection("A", domain.AllValues),
			want:      []int{0, 2, 4},
		},
		{
			name:      "Somente produto",
			selection: domain.NewFilterSelection(domain.AllValues, "Y"),
			want:      []int{1, 2},
		},
		{
			name:      "Região e produto combinados com AND",
			selection: domain.NewFilterSelection("A", "X"),
			want:      []int{0, 4},
		},
		{
			name:      "Comparação sensível a maiúsculas",
			selection: domain.NewFilterSelection("a", domain.AllValues),
			want:      []int{},
		},
		{
			name:      "Combinação sem linhas - resultado vazio válido",
			selection: domain.NewFilterSelection("B", "Z"),
			want:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := fixture()

			filtered := Apply(table, tt.selection)

			require.NotNil(t, filtered)
			require.Len(t, filtered.Records, len(tt.want))
			for i, idx := range tt.want {
				assert.Equal(t, table.Records[idx], filtered.Records[i])
			}
			assert.Equal(t, table.Columns, filtered.Columns)
			assert.Equal(t, 5, table.Len(), "a tabela original não deve ser alterada")
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	selections := []domain.FilterSelection{
		domain.NewFilterSelection(domain.AllValues, domain.AllValues),
		domain.NewFilterSelection("A", domain.AllValues),
		domain.NewFilterSelection(domain.AllValues, "X"),
		domain.NewFilterSelection("B", "Y"),
		domain.NewFilterSelection("C", "Z"),
	}

	for _, selection := range selections {
		once := Apply(fixture(), selection)
		twice := Apply(once, selection)
		assert.Equal(t, once, twice)
	}
}

func TestApply_ReturnsCopy(t *testing.T) {
	table := fixture()

	filtered := Apply(table, domain.NewFilterSelection(domain.AllValues, domain.AllValues))
	filtered.Records[0].Region = "Z"

	assert.Equal(t, "A", table.Records[0].Region)
}

func TestApply_NilTable(t *testing.T) {
	filtered := Apply(nil, domain.NewFilterSelection("A", "X"))
	assert.True(t, filtered.IsEmpty())
}

func TestOptions(t *testing.T) {
	table := fixture()
	table.Records = append(table.Records, domain.SalesRecord{Date: day(4), Region: "", Product: "W"})

	options := Options(table)

	assert.Equal(t, []string{domain.AllValues, "A", "B"}, options.Regions)
	assert.Equal(t, []string{domain.AllValues, "W", "X", "Y"}, options.Products)

	assert.True(t, IsValid(options, domain.NewFilterSelection("A", "W")))
	assert.False(t, IsValid(options, domain.NewFilterSelection("C", "W")))

	empty := Options(domain.NewSalesTable(nil))
	assert.Equal(t, []string{domain.AllValues}, empty.Regions)
	assert.Equal(t, []string{domain.AllValues}, empty.Products)
}
