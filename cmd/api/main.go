package main

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader, closer := newTableLoader(ctx, cfg)
	if closer != nil {
		defer closer.Close()
	}

	cachedLoader := loading.NewCachedLoader(loader)
	warmUp(ctx, cachedLoader)

	dashboardService := dashboard.NewService(cachedLoader)

	dataReloadService := scheduler.NewDataReloadService(cachedLoader, cfg)
	if err := dataReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de dados")
	} else {
		logrus.Info("Agendador de recarga de dados iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Builder:           dashboardService,
		Cache:             cachedLoader,
		Renderer:          charting.NewRenderer(cfg.Chart.Width, cfg.Chart.Height),
		Exporter:          exporting.NewExporter(cfg.Export.SheetName),
		DataReloadService: dataReloadService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newTableLoader escolhe a fonte dos dados de acordo com DATA_SOURCE
func newTableLoader(ctx context.Context, cfg *config.Config) (loading.TableLoader, io.Closer) {
	if cfg.Data.Source == config.DataSourcePostgres {
		conn := pgconn(ctx, cfg.Database)
		repo := repository.NewSalesRecordRepository(conn)

		logrus.WithField("source", repo.Name()).Info("Dados de vendas lidos do PostgreSQL")
		return loading.NewSourceLoader(repo), conn
	}

	logrus.WithField("source", cfg.Data.FilePath).Info("Dados de vendas lidos do arquivo CSV")
	return loading.NewCSVLoader(cfg.Data.FilePath), nil
}

// warmUp carrega a tabela na inicialização; falhas não impedem o servidor de subir
func warmUp(ctx context.Context, loader *loading.CachedLoader) {
	table, err := loader.Load(ctx)
	if err != nil {
		logrus.WithError(err).Warn(loading.UserMessage(err, loader.Source()))
		return
	}

	logrus.WithFields(logrus.Fields{
		"source": loader.Source(),
		"rows":   table.Len(),
	}).Info("Dados de vendas carregados na inicialização")
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
