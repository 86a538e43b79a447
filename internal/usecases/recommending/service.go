package recommending

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
	"github.com/vfg2006/finance-copilot-api/pkg/utils"
)

const (
	DefaultLimit = 5
	MinLimit     = 1
	MaxLimit     = 10
)

type RecommendationService interface {
	List(ctx context.Context, limit int, lang domain.Language) (*domain.RecommendationsResponse, error)
	ConvertToTask(ctx context.Context, id string) (*domain.TaskFromRecommendationResponse, error)
	Dismiss(ctx context.Context, id string) error
	Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)
	GenerateFromAnomalies(ctx context.Context, anomalies []domain.Anomaly, lang domain.Language) ([]*domain.Recommendation, error)
	ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type Service struct {
	recommendationRepo repository.RecommendationRepository
	now                func() time.Time
}

func NewService(recommendationRepo repository.RecommendationRepository) *Service {
	return &Service{
		recommendationRepo: recommendationRepo,
		now:                time.Now,
	}
}

// List devolve as recomendações ativas por prioridade (maior primeiro) e ordem de criação
func (s *Service) List(ctx context.Context, limit int, lang domain.Language) (*domain.RecommendationsResponse, error) {
	if limit < MinLimit || limit > MaxLimit {
		return nil, NewRecommendationError(ErrInvalidLimit, apiErrors.ErrOutOfRange,
			fmt.Sprintf("limit deve estar entre %d e %d", MinLimit, MaxLimit))
	}

	recommendations, err := s.recommendationRepo.ListByStatus(ctx, domain.RecommendationStatusActive, limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("recommendations: falha ao listar recomendações")
		return nil, NewRecommendationError(ErrListRecommendations, apiErrors.ErrDatabaseOperation, "Falha ao listar recomendações")
	}

	if recommendations == nil {
		recommendations = []*domain.Recommendation{}
	}

	for _, rec := range recommendations {
		rec.TypeLabel = typeLabel(rec.Type, lang)
		rec.PriorityLabel = priorityLabel(rec.Priority, lang)
	}

	return &domain.RecommendationsResponse{Recommendations: recommendations}, nil
}

// ConvertToTask cria a tarefa da recomendação ativa. A leitura, a inserção da
// tarefa e a transição para converted acontecem na mesma transação.
func (s *Service) ConvertToTask(ctx context.Context, id string) (*domain.TaskFromRecommendationResponse, error) {
	if id == "" {
		return nil, NewRecommendationError(ErrIDMissing, apiErrors.ErrMissingRequiredData, "id da recomendação é obrigatório")
	}

	logger := log.ForContext(ctx).WithField("recommendation", id)

	taskID, err := utils.GeneratePrefixedID("tsk")
	if err != nil {
		logger.WithError(err).Error("recommendations: falha ao gerar id da tarefa")
		return nil, NewRecommendationError(ErrConvertFailed, apiErrors.ErrInternalServer, "Falha ao gerar id da tarefa")
	}

	task, err := s.recommendationRepo.ConvertToTask(ctx, id, &domain.Task{
		ID:        taskID,
		Status:    domain.TaskStatusTodo,
		Source:    domain.TaskSourceCopilot,
		CreatedAt: s.now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecommendationNotFound):
			return nil, NewRecommendationError(ErrNotFound, apiErrors.ErrNotFound, id)
		case errors.Is(err, repository.ErrRecommendationNotActive):
			return nil, NewRecommendationError(ErrInvalidState, apiErrors.ErrAlreadyProcessed, id)
		}
		logger.WithError(err).Error("recommendations: falha ao converter recomendação em tarefa")
		return nil, NewRecommendationError(ErrConvertFailed, apiErrors.ErrDatabaseOperation, "Falha ao criar tarefa")
	}

	logger.Infof("recommendations: recomendação convertida na tarefa %s", task.ID)

	return &domain.TaskFromRecommendationResponse{
		Task:             task,
		RecommendationID: id,
	}, nil
}

// Dismiss descarta a recomendação. Um id inexistente é tratado como já
// descartado; uma recomendação convertida ou expirada gera ErrInvalidState.
func (s *Service) Dismiss(ctx context.Context, id string) error {
	if id == "" {
		return NewRecommendationError(ErrIDMissing, apiErrors.ErrMissingRequiredData, "id da recomendação é obrigatório")
	}

	logger := log.ForContext(ctx).WithField("recommendation", id)

	err := s.recommendationRepo.Dismiss(ctx, id, s.now())
	switch {
	case err == nil:
		logger.Info("recommendations: recomendação descartada")
		return nil
	case errors.Is(err, repository.ErrRecommendationNotFound):
		logger.Debug("recommendations: descarte de id inexistente ignorado")
		return nil
	case errors.Is(err, repository.ErrRecommendationNotActive):
		return NewRecommendationError(ErrInvalidState, apiErrors.ErrAlreadyProcessed, id)
	}

	logger.WithError(err).Error("recommendations: falha ao descartar recomendação")
	return NewRecommendationError(ErrDismissFailed, apiErrors.ErrDatabaseOperation, "Falha ao descartar recomendação")
}

// Create grava uma nova recomendação ativa. A prioridade é limitada a 1..5.
func (s *Service) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	if rec == nil || rec.Title == "" {
		return nil, NewRecommendationError(ErrTitleMissing, apiErrors.ErrMissingRequiredData, "título da recomendação é obrigatório")
	}

	id, err := utils.GeneratePrefixedID("rec")
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("recommendations: falha ao gerar id da recomendação")
		return nil, NewRecommendationError(ErrCreateFailed, apiErrors.ErrInternalServer, "Falha ao gerar id da recomendação")
	}

	now := s.now()
	created := *rec
	created.ID = id
	created.Status = domain.RecommendationStatusActive
	created.RelatedTaskID = nil
	created.Priority = clampPriority(rec.Priority)
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Type == "" {
		created.Type = domain.RecommendationTypeGeneral
	}

	if err := s.recommendationRepo.Create(ctx, &created); err != nil {
		log.ForContext(ctx).WithError(err).Error("recommendations: falha ao criar recomendação")
		return nil, NewRecommendationError(ErrCreateFailed, apiErrors.ErrDatabaseOperation, "Falha ao criar recomendação")
	}

	return &created, nil
}

// GenerateFromAnomalies cria recomendações a partir das anomalias detectadas,
// no máximo uma ativa por tipo. Anomalias sem regra no catálogo são ignoradas.
func (s *Service) GenerateFromAnomalies(ctx context.Context, anomalies []domain.Anomaly, lang domain.Language) ([]*domain.Recommendation, error) {
	ordered := make([]domain.Anomaly, len(anomalies))
	copy(ordered, anomalies)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Severity.Rank() > ordered[j].Severity.Rank()
	})

	created := []*domain.Recommendation{}
	seen := map[domain.RecommendationType]bool{}

	for _, a := range ordered {
		suggestion, ok := fromAnomaly(a, lang)
		if !ok || seen[suggestion.Type] {
			continue
		}
		seen[suggestion.Type] = true

		exists, err := s.recommendationRepo.ExistsActiveByType(ctx, suggestion.Type)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("recommendations: falha ao consultar recomendações ativas")
			return created, NewRecommendationError(ErrCreateFailed, apiErrors.ErrDatabaseOperation, "Falha ao consultar recomendações ativas")
		}
		if exists {
			continue
		}

		rec, err := s.Create(ctx, suggestion)
		if err != nil {
			return created, err
		}
		created = append(created, rec)
	}

	if len(created) > 0 {
		log.ForContext(ctx).Infof("recommendations: %d recomendações geradas a partir de anomalias", len(created))
	}

	return created, nil
}

// ExpireStale expira as recomendações ativas criadas há mais de olderThan
func (s *Service) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	now := s.now()

	expired, err := s.recommendationRepo.ExpireOlderThan(ctx, now.Add(-olderThan), now)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("recommendations: falha ao expirar recomendações")
		return 0, NewRecommendationError(ErrExpireFailed, apiErrors.ErrDatabaseOperation, "Falha ao expirar recomendações")
	}

	if expired > 0 {
		log.ForContext(ctx).Infof("recommendations: %d recomendações expiradas", expired)
	}

	return expired, nil
}

func clampPriority(priority int) int {
	if priority < domain.MinRecommendationPriority {
		return domain.MinRecommendationPriority
	}
	if priority > domain.MaxRecommendationPriority {
		return domain.MaxRecommendationPriority
	}
	return priority
}
