package main

import (
	"context"
	"os"
	"path"
	"runtime"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-copilot-api/infrastructure/database"
	"github.com/vfg2006/finance-copilot-api/infrastructure/datasource"
	"github.com/vfg2006/finance-copilot-api/infrastructure/integrator/narrative"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/internal/api"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"github.com/vfg2006/finance-copilot-api/internal/scheduler"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/briefing"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/recommending"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
)

func main() {
	// Garante que o .env ao lado do binário seja encontrado
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, dataSource := connect(ctx, cfg)
	defer conn.Close()

	metricRepo := repository.NewMonthlyMetricRepository(conn)
	anomalyRepo := repository.NewAnomalyRepository(conn)
	briefingRepo := repository.NewBriefingRepository(conn)
	recommendationRepo := repository.NewRecommendationRepository(conn)

	var source datasource.DataSource
	switch dataSource {
	case config.DataSourceDemo:
		source = datasource.NewDemoStore()
	default:
		// Queda do banco em tempo de execução serve os dados de demonstração
		source = datasource.WithFallback(datasource.NewLiveStore(metricRepo), datasource.NewDemoStore())
	}
	logrus.WithField("data_source", source.Name()).Info("Fonte de dados selecionada")

	narrator, err := narrative.New(ctx, cfg.Narrative)
	if err != nil {
		// Sem narrador o briefing usa os textos padrão
		logrus.WithError(err).Error("Erro ao iniciar o provedor de narrativa")
		narrator = narrative.Disabled()
	}
	logrus.WithField("provider", narrator.Provider()).Info("Provedor de narrativa configurado")

	anomalyService := detecting.NewService(source, anomalyRepo).WithLocation(cfg.Location())
	briefingService := briefing.NewService(cfg, briefingRepo, anomalyService, narrator)
	recommendationService := recommending.NewService(recommendationRepo)

	maintenanceService := scheduler.NewMaintenanceService(
		recommendationService,
		anomalyService,
		briefingRepo,
		cfg,
	)

	if err := maintenanceService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de manutenção")
	} else {
		logrus.Info("Agendador de manutenção iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DataSource:      source.Name(),
		Briefing:        briefingService,
		Anomalies:       anomalyService,
		Recommendations: recommendationService,
		Maintenance:     maintenanceService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// connect abre o banco configurado. Quando o banco está indisponível e o
// fallback de demonstração está ativo, usa um SQLite em memória e a fonte demo.
func connect(ctx context.Context, cfg *config.Config) (*database.Connection, string) {
	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		if !cfg.Copilot.DemoFallback {
			logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
		}

		logrus.WithError(err).Warn("Banco indisponível, usando dados de demonstração em memória")

		conn, err = database.OpenMemory(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir o banco em memória")
		}
		return conn, config.DataSourceDemo
	}

	logrus.WithField("driver", conn.Driver).Info("Conexão com o banco estabelecida com sucesso")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar o schema")
		}
	}

	return conn, cfg.Copilot.DataSource
}
