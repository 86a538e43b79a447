package detecting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/finance-copilot-api/infrastructure/datasource"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
)

const (
	MinLookbackMonths = 2
	MaxLookbackMonths = 6
)

type AnomalyService interface {
	Evaluate(ctx context.Context, lookbackMonths, thresholdPercent int) (*Evaluation, error)
	GetAnomalies(ctx context.Context, lookbackMonths, thresholdPercent int, lang domain.Language) (*domain.AnomaliesResponse, error)
	AcknowledgeAnomaly(ctx context.Context, id string) error
}

// Evaluation é uma rodada de detecção. Sample é nil quando não havia dados
// suficientes; nesse caso Anomalies é vazio e Latest traz o único mês disponível (se houver).
type Evaluation struct {
	Latest    *domain.MonthlyMetricRecord
	Sample    *MetricSample
	Anomalies []domain.Anomaly
	Analyzed  int
	Threshold int
}

type Service struct {
	dataSource  datasource.DataSource
	anomalyRepo repository.AnomalyRepository
	location    *time.Location
	now         func() time.Time
}

// NewService cria o serviço de anomalias. anomalyRepo é opcional (nil desativa
// o registro de auditoria e o reconhecimento de anomalias).
func NewService(dataSource datasource.DataSource, anomalyRepo repository.AnomalyRepository) *Service {
	return &Service{
		dataSource:  dataSource,
		anomalyRepo: anomalyRepo,
		location:    time.UTC,
		now:         time.Now,
	}
}

// WithLocation define o fuso da propriedade. O dia da detecção (e portanto o
// id da anomalia) segue o mesmo calendário do briefing.
func (s *Service) WithLocation(location *time.Location) *Service {
	if location != nil {
		s.location = location
	}
	return s
}

func (s *Service) Evaluate(ctx context.Context, lookbackMonths, thresholdPercent int) (*Evaluation, error) {
	threshold := ClampThreshold(thresholdPercent)

	records, err := s.dataSource.ListRecentMetrics(ctx, lookbackMonths)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar métricas (%s)", s.dataSource.Name())
	}

	sample, err := Sample(records, lookbackMonths)
	if err != nil {
		var insufficient *InsufficientDataError
		if errors.As(err, &insufficient) {
			log.ForContext(ctx).Infof("anomalies: dados insuficientes (%d meses), detecção ignorada", insufficient.Available)
			evaluation := &Evaluation{Anomalies: []domain.Anomaly{}, Analyzed: len(records), Threshold: threshold}
			if len(records) > 0 {
				evaluation.Latest = &records[0]
			}
			return evaluation, nil
		}
		return nil, err
	}

	anomalies := Detect(domain.MetricSetOf(sample.Latest), sample.TrailingAverage, threshold, s.now().In(s.location))

	return &Evaluation{
		Latest:    &sample.Latest,
		Sample:    sample,
		Anomalies: anomalies,
		Analyzed:  sample.Analyzed,
		Threshold: threshold,
	}, nil
}

func (s *Service) GetAnomalies(ctx context.Context, lookbackMonths, thresholdPercent int, lang domain.Language) (*domain.AnomaliesResponse, error) {
	if lookbackMonths < MinLookbackMonths || lookbackMonths > MaxLookbackMonths {
		return nil, NewAnomalyError(ErrInvalidLookback, apiErrors.ErrOutOfRange,
			fmt.Sprintf("lookback_months deve estar entre %d e %d", MinLookbackMonths, MaxLookbackMonths))
	}
	if thresholdPercent < MinThresholdPercent || thresholdPercent > MaxThresholdPercent {
		return nil, NewAnomalyError(ErrInvalidThreshold, apiErrors.ErrOutOfRange,
			fmt.Sprintf("threshold deve estar entre %d e %d", MinThresholdPercent, MaxThresholdPercent))
	}

	evaluation, err := s.Evaluate(ctx, lookbackMonths, thresholdPercent)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("anomalies: falha ao avaliar métricas")
		return nil, NewAnomalyError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Falha ao buscar métricas mensais")
	}

	anomalies := s.withoutAcknowledged(ctx, evaluation.Anomalies)
	for i := range anomalies {
		anomalies[i].Message = Describe(anomalies[i], lang)
	}

	return &domain.AnomaliesResponse{
		Anomalies: anomalies,
		Analyzed:  evaluation.Analyzed,
		Threshold: evaluation.Threshold,
	}, nil
}

// withoutAcknowledged registra as anomalias detectadas e remove as já reconhecidas.
// Falhas de auditoria não impedem a resposta.
func (s *Service) withoutAcknowledged(ctx context.Context, anomalies []domain.Anomaly) []domain.Anomaly {
	if s.anomalyRepo == nil || len(anomalies) == 0 {
		return anomalies
	}

	logger := log.ForContext(ctx)

	if err := s.anomalyRepo.SaveDetected(ctx, anomalies); err != nil {
		logger.WithError(err).Warn("anomalies: falha ao registrar anomalias detectadas")
		return anomalies
	}

	ids := make([]string, 0, len(anomalies))
	for _, a := range anomalies {
		ids = append(ids, a.ID)
	}

	acknowledged, err := s.anomalyRepo.AcknowledgedIDs(ctx, ids)
	if err != nil {
		logger.WithError(err).Warn("anomalies: falha ao consultar anomalias reconhecidas")
		return anomalies
	}

	visible := make([]domain.Anomaly, 0, len(anomalies))
	for _, a := range anomalies {
		if _, ok := acknowledged[a.ID]; ok {
			continue
		}
		visible = append(visible, a)
	}

	return visible
}

func (s *Service) AcknowledgeAnomaly(ctx context.Context, id string) error {
	if id == "" {
		return NewAnomalyError(ErrAnomalyIDMissing, apiErrors.ErrMissingRequiredData, "id da anomalia é obrigatório")
	}

	if s.anomalyRepo == nil {
		return NewAnomalyError(ErrAnomalyNotFound, apiErrors.ErrNotFound, id)
	}

	err := s.anomalyRepo.Acknowledge(ctx, id, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrAnomalyNotFound) {
			return NewAnomalyError(ErrAnomalyNotFound, apiErrors.ErrNotFound, id)
		}
		log.ForContext(ctx).WithError(err).Error("anomalies: falha ao reconhecer anomalia")
		return NewAnomalyError(ErrAcknowledgeFailed, apiErrors.ErrDatabaseOperation, "Falha ao reconhecer anomalia")
	}

	return nil
}
