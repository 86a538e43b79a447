package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/finance-copilot-api/infrastructure/database"
	"github.com/vfg2006/finance-copilot-api/infrastructure/datasource"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/internal/scheduler"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/recommending"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
	"github.com/vfg2006/finance-copilot-api/pkg/utils"
)

// app carrega a configuração e abre o banco sob demanda para cada comando
type app struct {
	cfg     *config.Config
	conn    *database.Connection
	connect func(ctx context.Context) (*config.Config, *database.Connection, error)
}

// connectFromEnv usa a mesma configuração (.env / variáveis) da API
func connectFromEnv(ctx context.Context) (*config.Config, *database.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	log.Setup(cfg.App.LogLevel, cfg.App.Env)

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao conectar ao banco: %w", err)
	}

	return cfg, conn, nil
}

func (a *app) open(ctx context.Context) error {
	cfg, conn, err := a.connect(ctx)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.conn = conn
	return nil
}

func (a *app) close() {
	if a.conn != nil {
		a.conn.Close()
	}
}

func newRootCommand() *cobra.Command {
	return newRootCommandFor(&app{connect: connectFromEnv})
}

func newRootCommandFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "copilot",
		Short:         "Ferramentas de operação do copiloto financeiro",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	root.AddCommand(
		migrateCommand(a),
		seedDemoCommand(a),
		anomaliesCommand(a),
		expireCommand(a),
		maintenanceCommand(a),
		tasksCommand(a),
	)

	return root
}

func migrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o schema no banco configurado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := database.Migrate(cmd.Context(), a.conn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema aplicado")
			return nil
		},
	}
}

func seedDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-demo",
		Short: "Grava os seis meses de demonstração em monthly_metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repository.NewMonthlyMetricRepository(a.conn)

			dataset := datasource.DemoDataset(time.Now())
			for i := range dataset {
				if err := repo.SaveOrUpdate(cmd.Context(), &dataset[i]); err != nil {
					return fmt.Errorf("erro ao gravar %s: %w", dataset[i].Period, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d meses gravados\n", len(dataset))
			return nil
		},
	}
}

func anomaliesCommand(a *app) *cobra.Command {
	var (
		lookback  int
		threshold int
		language  string
		demo      bool
	)

	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Executa a detecção de anomalias e imprime o resultado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang, ok := domain.ParseLanguage(language)
			if !ok {
				return fmt.Errorf("idioma inválido: %s", language)
			}

			var source datasource.DataSource = datasource.NewLiveStore(repository.NewMonthlyMetricRepository(a.conn))
			if demo {
				source = datasource.NewDemoStore()
			}

			service := detecting.NewService(source, repository.NewAnomalyRepository(a.conn)).WithLocation(a.cfg.Location())

			resp, err := service.GetAnomalies(cmd.Context(), lookback, threshold, lang)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&lookback, "lookback", 6, "meses usados na média móvel (2 a 6)")
	cmd.Flags().IntVar(&threshold, "threshold", 20, "limiar de desvio em porcentagem (10 a 50)")
	cmd.Flags().StringVar(&language, "language", "en", "idioma das mensagens (ka ou en)")
	cmd.Flags().BoolVar(&demo, "demo", false, "usa o conjunto de demonstração em vez do banco")

	return cmd
}

func expireCommand(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Expira recomendações ativas mais antigas que --days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 1 {
				return fmt.Errorf("--days deve ser maior que zero")
			}

			service := recommending.NewService(repository.NewRecommendationRepository(a.conn))

			expired, err := service.ExpireStale(cmd.Context(), time.Duration(days)*24*time.Hour)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d recomendações expiradas\n", expired)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "idade mínima em dias")

	return cmd
}

func maintenanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "maintenance <job>",
		Short:     "Executa um job de manutenção de forma síncrona",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{scheduler.JobExpireRecommendations, scheduler.JobPruneBriefings, scheduler.JobGenerateRecommendations, scheduler.JobAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			recommendations := recommending.NewService(repository.NewRecommendationRepository(a.conn))
			source := datasource.NewLiveStore(repository.NewMonthlyMetricRepository(a.conn))
			anomalies := detecting.NewService(source, repository.NewAnomalyRepository(a.conn)).WithLocation(a.cfg.Location())

			service := scheduler.NewMaintenanceService(recommendations, anomalies, repository.NewBriefingRepository(a.conn), a.cfg)

			result, err := service.RunJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(result))
			return nil
		},
	}
}

func tasksCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks <recommendation-id>",
		Short: "Lista as tarefas criadas a partir de uma recomendação",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := repository.NewTaskRepository(a.conn).ListByRecommendation(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(tasks))
			return nil
		},
	}
}
