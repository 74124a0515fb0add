package api

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies agrupa os serviços usados pelas rotas
type Dependencies struct {
	Builder           dashboard.Builder
	Cache             handler.CacheStatus
	Templates         *template.Template
	Renderer          *charting.Renderer
	Exporter          *exporting.Exporter
	DataReloadService handler.DataReloader
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Builder == nil {
		return nil, fmt.Errorf("serviço do dashboard não informado")
	}

	if deps.Templates == nil {
		templates, err := handler.ParseTemplates()
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar templates: %w", err)
		}
		deps.Templates = templates
	}

	cronServices := handler.CronJobServices{
		DataReloadService: deps.DataReloadService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Cache)...),
		router.WithRoutes(handler.Dashboard(deps.Builder, deps.Templates)...),
		router.WithRoutes(handler.Charts(deps.Builder, deps.Renderer)...),
		router.WithRoutes(handler.Export(deps.Builder, deps.Exporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	for _, route := range rt.Routes() {
		logrus.WithFields(logrus.Fields{
			"method": route.Method,
			"path":   route.Path,
		}).Debug("Rota registrada")
	}

	httpHandler := NewHandler(rt, config.Server.AllowedOrigins)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           httpHandler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler aplica a cadeia de middlewares globais sobre o router
func NewHandler(rt http.Handler, allowedOrigins []string) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.SessionMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(allowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
