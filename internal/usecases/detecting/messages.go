package detecting

import (
	"fmt"
	"math"

	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

var metricLabels = map[domain.Language]map[string]string{
	domain.LanguageGeorgian: {
		domain.MetricRevenue:          "შემოსავალი",
		domain.MetricMarketingSpend:   "მარკეტინგის ხარჯი",
		domain.MetricUtilitiesSpend:   "კომუნალური ხარჯი",
		domain.MetricOccupancyPercent: "დატვირთვა",
	},
	domain.LanguageEnglish: {
		domain.MetricRevenue:          "Revenue",
		domain.MetricMarketingSpend:   "Marketing spend",
		domain.MetricUtilitiesSpend:   "Utilities spend",
		domain.MetricOccupancyPercent: "Occupancy",
	},
}

// MetricLabel devolve o nome da métrica no idioma pedido (inglês como fallback)
func MetricLabel(metricName string, lang domain.Language) string {
	if labels, ok := metricLabels[lang]; ok {
		if label, ok := labels[metricName]; ok {
			return label
		}
	}
	if label, ok := metricLabels[domain.LanguageEnglish][metricName]; ok {
		return label
	}
	return metricName
}

// Describe monta a mensagem legível da anomalia
func Describe(a domain.Anomaly, lang domain.Language) string {
	label := MetricLabel(a.MetricName, lang)
	magnitude := math.Abs(a.DeviationPercent)

	if lang == domain.LanguageGeorgian {
		verb := "გაიზარდა"
		if a.Direction == domain.DirectionDecrease {
			verb = "შემცირდა"
		}
		if a.DeviationUnit == domain.DeviationUnitPoints {
			return fmt.Sprintf("%s %s %.0f პუნქტით (%.0f%% / საშუალო %.0f%%)", label, verb, magnitude, a.ActualValue, a.ExpectedValue)
		}
		return fmt.Sprintf("%s %s %.0f%%-ით საშუალოსთან შედარებით (%.0f / %.0f)", label, verb, magnitude, a.ActualValue, a.ExpectedValue)
	}

	verb := "increased"
	if a.Direction == domain.DirectionDecrease {
		verb = "decreased"
	}
	if a.DeviationUnit == domain.DeviationUnitPoints {
		return fmt.Sprintf("%s %s by %.0f points (%.0f%% vs %.0f%% average)", label, verb, magnitude, a.ActualValue, a.ExpectedValue)
	}
	return fmt.Sprintf("%s %s %.0f%% vs the trailing average (%.0f vs %.0f)", label, verb, magnitude, a.ActualValue, a.ExpectedValue)
}
