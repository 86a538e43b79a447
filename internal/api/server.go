package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-copilot-api/internal/api/handler"
	"github.com/vfg2006/finance-copilot-api/internal/api/handler/router"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/briefing"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/recommending"
	"github.com/vfg2006/finance-copilot-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	DataSource      string
	Briefing        briefing.BriefingService
	Anomalies       detecting.AnomalyService
	Recommendations recommending.RecommendationService
	Maintenance     handler.MaintenanceRunner
}

func New(config *config.Config, services Services) (*Server, error) {
	defaultLanguage, ok := domain.ParseLanguage(config.Copilot.DefaultLanguage)
	if !ok {
		return nil, fmt.Errorf("idioma padrão inválido: %s", config.Copilot.DefaultLanguage)
	}

	defaults := handler.CopilotDefaults{
		Language:         defaultLanguage,
		LookbackMonths:   config.Copilot.LookbackMonths,
		ThresholdPercent: config.Copilot.ThresholdPercent,
	}

	cronServices := handler.CronJobServices{
		Maintenance: services.Maintenance,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DataSource)...),
		router.WithRoutes(handler.Briefing(services.Briefing, defaults)...),
		router.WithRoutes(handler.Anomalies(services.Anomalies, defaults)...),
		router.WithRoutes(handler.Recommendations(services.Recommendations, defaults)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.Language(defaultLanguage),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
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

	// Aguardar pelo sinal ou pelo cancelamento do contexto
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
