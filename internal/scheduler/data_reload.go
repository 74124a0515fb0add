package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=data_reload.go -destination=mocks/reloader.go -package=mocks

// TableReloader descarta a tabela em cache e carrega a fonte novamente
type TableReloader interface {
	Reload(ctx context.Context) (*domain.SalesTable, error)
	Source() string
}

// DataReloadConfig representa a configuração do agendador de recarga dos dados
type DataReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// DataReloadService agenda a recarga periódica da tabela de vendas
type DataReloadService struct {
	scheduler             *gocron.Scheduler
	config                DataReloadConfig
	reloader              TableReloader
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastRows              int
	lastError             string
}

// NewDataReloadService cria uma nova instância do serviço de recarga
func NewDataReloadService(reloader TableReloader, appConfig *config.Config) *DataReloadService {
	reloadConfig := DataReloadConfig{
		CronSchedule: appConfig.DataReload.CronSchedule,
		Enabled:      appConfig.DataReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.Enabled,
		"source":        reloader.Source(),
	}).Info("Configuração do agendador de recarga de dados carregada")

	return &DataReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		reloader:  reloader,
	}
}

// Start inicia o agendador
func (s *DataReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga agendada de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.ReloadData(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadData recarrega a tabela; execuções simultâneas são ignoradas
func (s *DataReloadService) ReloadData(ctx context.Context) {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de dados já em andamento, ignorando")
		return
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	s.reloadMutex.Unlock()

	startTime := time.Now()
	table, err := s.reloader.Reload(ctx)

	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()
	s.reloadRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).WithField("source", s.reloader.Source()).Error("Erro ao recarregar dados de vendas")
		return
	}

	s.lastError = ""
	s.lastRows = table.Len()
	s.lastReloadCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"source":   s.reloader.Source(),
		"rows":     s.lastRows,
		"duration": time.Since(startTime).String(),
	}).Info("Recarga de dados concluída")
}

// TriggerManualReload inicia manualmente uma recarga em segundo plano
func (s *DataReloadService) TriggerManualReload() bool {
	s.reloadMutex.Lock()
	running := s.reloadRunning
	s.reloadMutex.Unlock()

	if running {
		logrus.Info("Recarga de dados já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual de dados")
	go s.ReloadData(context.Background())
	return true
}

// IsRunning indica se há uma recarga em andamento
func (s *DataReloadService) IsRunning() bool {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()
	return s.reloadRunning
}

// GetStatus retorna o status atual do agendador
func (s *DataReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	return map[string]any{
		"reload_enabled":           s.config.Enabled,
		"reload_cron":              s.config.CronSchedule,
		"reload_running":           s.reloadRunning,
		"source":                   s.reloader.Source(),
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"last_reload_rows":         s.lastRows,
		"last_reload_error":        s.lastError,
	}
}
