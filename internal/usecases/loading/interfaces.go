package loading

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/loader.go -package=mocks

// TableLoader define a interface para obter a tabela de vendas completa
type TableLoader interface {
	// Load carrega a tabela; falhas interrompem o restante do pipeline
	Load(ctx context.Context) (*domain.SalesTable, error)

	// Source descreve a origem dos dados (caminho do arquivo ou tabela)
	Source() string
}

// Versioned é implementado por fontes que sabem dizer se mudaram
type Versioned interface {
	Version() (string, error)
}

// RecordSource define uma fonte de registros fora do sistema de arquivos
type RecordSource interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
	Name() string
}
