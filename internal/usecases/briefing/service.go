package briefing

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/finance-copilot-api/infrastructure/integrator/narrative"
	narrativedomain "github.com/vfg2006/finance-copilot-api/infrastructure/integrator/narrative/domain"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/finance-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
	"github.com/vfg2006/finance-copilot-api/pkg/utils"
)

// Variações abaixo de 1 (% ou ponto) são consideradas estáveis
const stableBand = 1.0

type BriefingService interface {
	GetDailyBriefing(ctx context.Context, lang domain.Language) (*domain.BriefingView, error)
}

type Service struct {
	cache     *Cache
	anomalies detecting.AnomalyService
	narrator  narrative.Narrator
	cfg       *config.Config
	location  *time.Location
	now       func() time.Time
}

func NewService(
	cfg *config.Config,
	briefingRepo repository.BriefingRepository,
	anomalies detecting.AnomalyService,
	narrator narrative.Narrator,
) *Service {
	return &Service{
		cache:     NewCache(briefingRepo),
		anomalies: anomalies,
		narrator:  narrator,
		cfg:       cfg,
		location:  cfg.Location(),
		now:       time.Now,
	}
}

// narrativeContext é o documento enviado ao modelo
type narrativeContext struct {
	Property   string                   `json:"property"`
	Date       string                   `json:"date"`
	Weekday    string                   `json:"weekday"`
	Language   domain.Language          `json:"language"`
	KeyMetrics []domain.KeyMetric       `json:"keyMetrics"`
	Anomalies  []domain.BriefingAnomaly `json:"anomalies"`
}

func (s *Service) GetDailyBriefing(ctx context.Context, lang domain.Language) (*domain.BriefingView, error) {
	now := s.now().In(s.location)
	date := now.Format(utils.DateLayout)

	briefing, cached, err := s.cache.GetOrGenerate(ctx, date, lang, func(ctx context.Context) (domain.BriefingContent, error) {
		return s.generate(ctx, now, lang)
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("briefing: falha ao gerar briefing diário")
		return nil, NewBriefingError(ErrGenerateBriefing, apiErrors.ErrDatabaseOperation, "Falha ao gerar o briefing diário")
	}

	return &domain.BriefingView{
		Greeting:    briefing.Content.Greeting,
		Summary:     briefing.Content.Summary,
		KeyMetrics:  briefing.Content.KeyMetrics,
		Anomalies:   briefing.Content.Anomalies,
		Cached:      cached,
		GeneratedAt: briefing.GeneratedAt,
		DateInfo: domain.DateInfo{
			Date:     date,
			Weekday:  weekdayName(now.Weekday(), lang),
			Timezone: s.location.String(),
		},
	}, nil
}

func (s *Service) generate(ctx context.Context, now time.Time, lang domain.Language) (domain.BriefingContent, error) {
	evaluation, err := s.anomalies.Evaluate(ctx, s.cfg.Copilot.LookbackMonths, s.cfg.Copilot.ThresholdPercent)
	if err != nil {
		return domain.BriefingContent{}, errors.Wrap(err, "erro ao avaliar métricas")
	}

	content := domain.BriefingContent{
		KeyMetrics: buildKeyMetrics(evaluation, lang),
		Anomalies:  briefingAnomalies(evaluation.Anomalies, lang),
	}

	greeting, summary, err := s.narrate(ctx, now, lang, content)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("briefing: narrativa indisponível, usando texto padrão")
		greeting = defaultGreeting(now, lang)
		summary = placeholderSummary(len(content.Anomalies), lang)
	}

	content.Greeting = greeting
	content.Summary = summary
	return content, nil
}

// narrate pede greeting e summary ao modelo. Qualquer falha, inclusive uma
// resposta fora do formato, volta como *narrativedomain.ExternalServiceError.
func (s *Service) narrate(ctx context.Context, now time.Time, lang domain.Language, content domain.BriefingContent) (string, string, error) {
	payload, err := json.Marshal(narrativeContext{
		Property:   s.cfg.Copilot.PropertyName,
		Date:       now.Format(utils.DateLayout),
		Weekday:    weekdayName(now.Weekday(), lang),
		Language:   lang,
		KeyMetrics: content.KeyMetrics,
		Anomalies:  content.Anomalies,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "erro ao serializar contexto da narrativa")
	}

	text, err := s.narrator.Complete(ctx, systemInstruction(lang), string(payload))
	if err != nil {
		return "", "", err
	}

	greeting, summary, err := parseNarrative(text)
	if err != nil {
		return "", "", &narrativedomain.ExternalServiceError{Provider: s.narrator.Provider(), Err: err}
	}

	return greeting, summary, nil
}

type keyMetricInput struct {
	key     string
	value   float64
	average float64
	points  bool
}

// buildKeyMetrics compara o mês mais recente com a média móvel. Sem média
// (um único mês disponível) as variações ficam zeradas.
func buildKeyMetrics(evaluation *detecting.Evaluation, lang domain.Language) []domain.KeyMetric {
	if evaluation == nil || evaluation.Latest == nil {
		return []domain.KeyMetric{}
	}

	latest := domain.MetricSetOf(*evaluation.Latest)
	var average domain.MetricSet
	hasAverage := evaluation.Sample != nil
	if hasAverage {
		average = evaluation.Sample.TrailingAverage
	}

	inputs := []keyMetricInput{
		{key: keyRevenue, value: latest.Revenue, average: average.Revenue},
		{key: keyExpenses, value: latest.Expenses, average: average.Expenses},
		{key: keyProfit, value: latest.Profit, average: average.Profit},
		{key: keyOccupancy, value: latest.OccupancyPercent, average: average.OccupancyPercent, points: true},
		{key: keyAveragePrice, value: latest.AveragePrice, average: average.AveragePrice},
	}

	metrics := make([]domain.KeyMetric, 0, len(inputs))
	for _, in := range inputs {
		change := 0.0
		if hasAverage {
			change = metricChange(in)
		}

		metrics = append(metrics, domain.KeyMetric{
			Label:  keyMetricLabel(in.key, lang),
			Value:  utils.RoundWithTwoDecimalPlace(in.value),
			Change: change,
			Trend:  trendOf(change),
		})
	}

	return metrics
}

func metricChange(in keyMetricInput) float64 {
	if in.points {
		return utils.RoundWithTwoDecimalPlace(in.value - in.average)
	}

	change, ok := utils.PercentChange(in.value, in.average)
	if !ok {
		return 0
	}
	return change
}

func trendOf(change float64) domain.Trend {
	switch {
	case math.Abs(change) < stableBand:
		return domain.TrendStable
	case change > 0:
		return domain.TrendUp
	default:
		return domain.TrendDown
	}
}

func briefingAnomalies(anomalies []domain.Anomaly, lang domain.Language) []domain.BriefingAnomaly {
	result := make([]domain.BriefingAnomaly, 0, len(anomalies))
	for _, a := range anomalies {
		result = append(result, domain.BriefingAnomaly{
			Message:  detecting.Describe(a, lang),
			Severity: a.Severity,
			Value:    a.DeviationPercent,
		})
	}
	return result
}
