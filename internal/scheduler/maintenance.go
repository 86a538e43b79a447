// Package scheduler contém os jobs de manutenção executados em background
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/recommending"
	"github.com/vfg2006/finance-copilot-api/pkg/utils"
)

// Tipos de job aceitos pela execução manual
const (
	JobExpireRecommendations   = "expire-recommendations"
	JobPruneBriefings          = "prune-briefings"
	JobGenerateRecommendations = "generate-recommendations"
	JobAll                     = "all"
)

var (
	ErrUnknownJob = errors.New("tipo de job de manutenção desconhecido")
	ErrJobRunning = errors.New("job de manutenção já em execução")
)

type MaintenanceConfig struct {
	CronSchedule            string
	Enabled                 bool
	RecommendationTTL       time.Duration
	BriefingRetentionDays   int
	GenerateRecommendations bool
	Language                domain.Language
	LookbackMonths          int
	ThresholdPercent        int
	Location                *time.Location
}

// RunResult resume uma execução de manutenção
type RunResult struct {
	Job                      string   `json:"job"`
	ExpiredRecommendations   int64    `json:"expired_recommendations"`
	DeletedBriefings         int64    `json:"deleted_briefings"`
	GeneratedRecommendations int      `json:"generated_recommendations"`
	Errors                   []string `json:"errors,omitempty"`
}

type MaintenanceService struct {
	scheduler           *gocron.Scheduler
	recommendations     recommending.RecommendationService
	anomalies           detecting.AnomalyService
	briefingRepo        repository.BriefingRepository
	config              MaintenanceConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *RunResult
	now                 func() time.Time
}

func NewMaintenanceService(
	recommendations recommending.RecommendationService,
	anomalies detecting.AnomalyService,
	briefingRepo repository.BriefingRepository,
	cfg *config.Config,
) *MaintenanceService {
	location := cfg.Location()
	language, ok := domain.ParseLanguage(cfg.Copilot.DefaultLanguage)
	if !ok {
		language = domain.LanguageGeorgian
	}

	maintenanceConfig := MaintenanceConfig{
		CronSchedule:            cfg.Maintenance.CronSchedule, // Default: 4h da manhã todos os dias
		Enabled:                 cfg.Maintenance.Enabled,      // Default: desabilitado
		RecommendationTTL:       time.Duration(cfg.Maintenance.RecommendationTTLDays) * 24 * time.Hour,
		BriefingRetentionDays:   cfg.Maintenance.BriefingRetentionDays,
		GenerateRecommendations: cfg.Maintenance.GenerateRecommendations,
		Language:                language,
		LookbackMonths:          cfg.Copilot.LookbackMonths,
		ThresholdPercent:        cfg.Copilot.ThresholdPercent,
		Location:                location,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": maintenanceConfig.CronSchedule,
		"enabled":       maintenanceConfig.Enabled,
	}).Info("Configuração do agendador de manutenção carregada")

	return &MaintenanceService{
		scheduler:       gocron.NewScheduler(location),
		recommendations: recommendations,
		anomalies:       anomalies,
		briefingRepo:    briefingRepo,
		config:          maintenanceConfig,
		now:             time.Now,
	}
}

func (s *MaintenanceService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de manutenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de manutenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunJob(ctx, JobAll); err != nil {
			logrus.WithError(err).Error("Erro na execução da manutenção agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar manutenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de manutenção")
		s.scheduler.Stop()
	}()

	return nil
}

func IsValidJob(job string) bool {
	switch job {
	case JobExpireRecommendations, JobPruneBriefings, JobGenerateRecommendations, JobAll:
		return true
	}
	return false
}

// RunJob executa o job pedido. Só uma execução por vez; os passos são
// independentes e a falha de um não impede os demais.
func (s *MaintenanceService) RunJob(ctx context.Context, job string) (*RunResult, error) {
	if !IsValidJob(job) {
		return nil, ErrUnknownJob
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("job", job).Warn("Manutenção já está em execução")
		return nil, ErrJobRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	result := &RunResult{Job: job}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastResult = result
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithField("job", job)
	logger.Info("Iniciando manutenção")

	var failures []error
	if job == JobExpireRecommendations || job == JobAll {
		if err := s.expireRecommendations(ctx, result); err != nil {
			failures = append(failures, err)
		}
	}

	if job == JobPruneBriefings || job == JobAll {
		if err := s.pruneBriefings(ctx, result); err != nil {
			failures = append(failures, err)
		}
	}

	// No job completo a geração respeita MAINTENANCE_GENERATE_RECOMMENDATIONS
	if job == JobGenerateRecommendations || (job == JobAll && s.config.GenerateRecommendations) {
		if err := s.generateRecommendations(ctx, result); err != nil {
			failures = append(failures, err)
		}
	}

	for _, failure := range failures {
		result.Errors = append(result.Errors, failure.Error())
	}

	logger.WithFields(logrus.Fields{
		"expired_recommendations":   result.ExpiredRecommendations,
		"deleted_briefings":         result.DeletedBriefings,
		"generated_recommendations": result.GeneratedRecommendations,
		"errors":                    len(failures),
	}).Info("Manutenção concluída")

	if len(failures) > 0 {
		return result, fmt.Errorf("manutenção concluída com %d falha(s): %w", len(failures), failures[0])
	}

	return result, nil
}

func (s *MaintenanceService) expireRecommendations(ctx context.Context, result *RunResult) error {
	if s.config.RecommendationTTL <= 0 {
		return nil
	}

	expired, err := s.recommendations.ExpireStale(ctx, s.config.RecommendationTTL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao expirar recomendações antigas")
		return errors.Wrap(err, "expirar recomendações")
	}

	result.ExpiredRecommendations = expired
	return nil
}

func (s *MaintenanceService) pruneBriefings(ctx context.Context, result *RunResult) error {
	if s.config.BriefingRetentionDays <= 0 {
		return nil
	}

	cutoff := utils.DateIn(s.now().AddDate(0, 0, -s.config.BriefingRetentionDays), s.config.Location)

	deleted, err := s.briefingRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover briefings antigos")
		return errors.Wrap(err, "remover briefings")
	}

	result.DeletedBriefings = deleted
	return nil
}

func (s *MaintenanceService) generateRecommendations(ctx context.Context, result *RunResult) error {
	evaluation, err := s.anomalies.Evaluate(ctx, s.config.LookbackMonths, s.config.ThresholdPercent)
	if err != nil {
		logrus.WithError(err).Error("Erro ao avaliar anomalias para recomendações")
		return errors.Wrap(err, "avaliar anomalias")
	}

	created, err := s.recommendations.GenerateFromAnomalies(ctx, evaluation.Anomalies, s.config.Language)
	result.GeneratedRecommendations = len(created)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar recomendações a partir de anomalias")
		return errors.Wrap(err, "gerar recomendações")
	}

	return nil
}

// TriggerManualSync inicia o job em background. Retorna ErrJobRunning se já houver uma execução.
func (s *MaintenanceService) TriggerManualSync(job string) error {
	if !IsValidJob(job) {
		return ErrUnknownJob
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Manutenção já em andamento, ignorando solicitação manual")
		return ErrJobRunning
	}
	s.syncMutex.Unlock()

	logrus.WithField("job", job).Info("Iniciando manutenção manual")
	go func() {
		if _, err := s.RunJob(context.Background(), job); err != nil {
			logrus.WithError(err).WithField("job", job).Error("Erro na manutenção manual")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *MaintenanceService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
