package loading

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"golang.org/x/sync/singleflight"
)

const loadKey = "sales-table"

// CachedLoader mantém a tabela carregada entre requisições.
// Falhas nunca são guardadas: a próxima requisição tenta carregar de novo.
type CachedLoader struct {
	loader   TableLoader
	group    singleflight.Group
	mu       sync.RWMutex
	table    *domain.SalesTable
	version  string
	loadedAt time.Time
}

// NewCachedLoader envolve o loader informado com cache
func NewCachedLoader(loader TableLoader) *CachedLoader {
	return &CachedLoader{loader: loader}
}

// Source retorna a origem do loader envolvido
func (c *CachedLoader) Source() string {
	return c.loader.Source()
}

// Load devolve a tabela em cache enquanto a versão da fonte não mudar
func (c *CachedLoader) Load(ctx context.Context) (*domain.SalesTable, error) {
	version, err := c.currentVersion()
	if err != nil {
		c.Invalidate()
		return nil, err
	}

	c.mu.RLock()
	table, cachedVersion := c.table, c.version
	c.mu.RUnlock()

	if table != nil && cachedVersion == version {
		return table, nil
	}

	// a carga compartilhada não pode ser cancelada pela requisição que a iniciou
	loadCtx := context.WithoutCancel(ctx)

	result, err, shared := c.group.Do(loadKey, func() (interface{}, error) {
		loaded, err := c.loader.Load(loadCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.table = loaded
		c.version = version
		c.loadedAt = time.Now()
		c.mu.Unlock()

		logrus.WithFields(logrus.Fields{
			"source": c.loader.Source(),
			"rows":   loaded.Len(),
		}).Info("Tabela de vendas carregada no cache")

		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		logrus.WithField("source", c.loader.Source()).Debug("Carga da tabela compartilhada entre requisições")
	}

	return result.(*domain.SalesTable), nil
}

// Reload descarta o cache e carrega a tabela novamente
func (c *CachedLoader) Reload(ctx context.Context) (*domain.SalesTable, error) {
	c.Invalidate()
	return c.Load(ctx)
}

// Invalidate descarta a tabela em cache
func (c *CachedLoader) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = nil
	c.version = ""
	c.loadedAt = time.Time{}
}

// LoadedAt retorna o momento da última carga bem-sucedida
func (c *CachedLoader) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

func (c *CachedLoader) currentVersion() (string, error) {
	versioned, ok := c.loader.(Versioned)
	if !ok {
		return "", nil
	}
	return versioned.Version()
}
