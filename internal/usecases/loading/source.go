package loading

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SourceLoader adapta uma RecordSource (ex.: PostgreSQL) para TableLoader
type SourceLoader struct {
	source RecordSource
}

// NewSourceLoader cria um loader sobre a fonte informada
func NewSourceLoader(source RecordSource) *SourceLoader {
	return &SourceLoader{source: source}
}

// Source retorna o nome da fonte
func (l *SourceLoader) Source() string {
	return l.source.Name()
}

// Load busca todos os registros da fonte. Uma fonte sem linhas gera uma tabela vazia.
func (l *SourceLoader) Load(ctx context.Context) (*domain.SalesTable, error) {
	records, err := l.source.ListSalesRecords(ctx)
	if err != nil {
		return nil, NewLoadError(ErrSourceUnavailable, CodeSource, l.source.Name(), err.Error())
	}

	for i, record := range records {
		if record.Date.IsZero() {
			return nil, NewLoadErrorAtLine(ErrInvalidDate, CodeInvalidData, l.source.Name(), i+1, "data ausente")
		}
	}

	return domain.NewSalesTable(records), nil
}
