package detecting

import (
	"math"
	"time"

	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/pkg/utils"
)

const (
	MinThresholdPercent = 10
	MaxThresholdPercent = 50

	// Ocupação é comparada em pontos percentuais absolutos
	occupancyThresholdPoints = 10
	occupancyHighPoints      = 15

	highSeverityFactor = 1.5
)

type trackedMetric struct {
	name     string
	category domain.AnomalyCategory
	points   bool
	value    func(domain.MetricSet) float64
}

// Ordem fixa de avaliação; a saída do detector segue esta ordem
var trackedMetrics = []trackedMetric{
	{
		name:     domain.MetricRevenue,
		category: domain.AnomalyCategoryRevenue,
		value:    func(m domain.MetricSet) float64 { return m.Revenue },
	},
	{
		name:     domain.MetricMarketingSpend,
		category: domain.AnomalyCategoryExpense,
		value:    func(m domain.MetricSet) float64 { return m.MarketingSpend },
	},
	{
		name:     domain.MetricUtilitiesSpend,
		category: domain.AnomalyCategoryExpense,
		value:    func(m domain.MetricSet) float64 { return m.UtilitiesSpend },
	},
	{
		name:     domain.MetricOccupancyPercent,
		category: domain.AnomalyCategoryOperations,
		points:   true,
		value:    func(m domain.MetricSet) float64 { return m.OccupancyPercent },
	},
}

// ClampThreshold limita o threshold ao intervalo aceito [10, 50]
func ClampThreshold(thresholdPercent int) int {
	if thresholdPercent < MinThresholdPercent {
		return MinThresholdPercent
	}
	if thresholdPercent > MaxThresholdPercent {
		return MaxThresholdPercent
	}
	return thresholdPercent
}

// Detect compara o mês mais recente com a média móvel. Não tem estado:
// as mesmas entradas produzem sempre as mesmas anomalias, inclusive os ids.
func Detect(latest, trailingAverage domain.MetricSet, thresholdPercent int, detectedAt time.Time) []domain.Anomaly {
	threshold := float64(ClampThreshold(thresholdPercent))
	anomalies := make([]domain.Anomaly, 0, len(trackedMetrics))

	for _, metric := range trackedMetrics {
		actual := metric.value(latest)
		expected := metric.value(trailingAverage)

		// Sem base de comparação (evita divisão por zero)
		if expected == 0 {
			continue
		}

		var (
			deviation float64
			severity  domain.Severity
			unit      domain.DeviationUnit
		)

		if metric.points {
			deviation = utils.RoundWithTwoDecimalPlace(actual - expected)
			unit = domain.DeviationUnitPoints

			diff := math.Abs(actual - expected)
			if diff <= occupancyThresholdPoints {
				continue
			}
			severity = domain.SeverityLow
			if diff > occupancyHighPoints {
				severity = domain.SeverityHigh
			}
		} else {
			deviation = math.Round((actual - expected) / expected * 100)
			unit = domain.DeviationUnitPercent

			abs := math.Abs(deviation)
			if abs < threshold {
				continue
			}
			severity = domain.SeverityMedium
			if abs >= threshold*highSeverityFactor {
				severity = domain.SeverityHigh
			}
		}

		direction := domain.DirectionIncrease
		if actual < expected {
			direction = domain.DirectionDecrease
		}

		anomalies = append(anomalies, domain.Anomaly{
			ID:               domain.AnomalyID(metric.name, detectedAt),
			Category:         metric.category,
			MetricName:       metric.name,
			ExpectedValue:    utils.RoundWithTwoDecimalPlace(expected),
			ActualValue:      utils.RoundWithTwoDecimalPlace(actual),
			DeviationPercent: deviation,
			DeviationUnit:    unit,
			Direction:        direction,
			Severity:         severity,
			DetectedAt:       detectedAt,
		})
	}

	return anomalies
}
