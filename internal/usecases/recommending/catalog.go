package recommending

import (
	"fmt"
	"math"

	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

type ruleKey struct {
	metric    string
	direction domain.Direction
}

type localizedText struct {
	title       string
	description string
}

type rule struct {
	recType domain.RecommendationType
	text    map[domain.Language]localizedText
}

// rules associa cada anomalia relevante a uma ação sugerida. Variações
// favoráveis (receita subindo, custo caindo) não geram recomendação.
var rules = map[ruleKey]rule{
	{domain.MetricRevenue, domain.DirectionDecrease}: {
		recType: domain.RecommendationTypeRevenue,
		text: map[domain.Language]localizedText{
			domain.LanguageEnglish: {
				title:       "Review the revenue drop",
				description: "Revenue fell %.0f%% below the trailing average. Check cancellations, channel mix and rates for the month.",
			},
			domain.LanguageGeorgian: {
				title:       "შემოსავლის კლების ანალიზი",
				description: "შემოსავალი საშუალოზე %.0f%%-ით დაბალია. გადაამოწმეთ გაუქმებები, არხები და ფასები.",
			},
		},
	},
	{domain.MetricMarketingSpend, domain.DirectionIncrease}: {
		recType: domain.RecommendationTypeMarketing,
		text: map[domain.Language]localizedText{
			domain.LanguageEnglish: {
				title:       "Review marketing spend",
				description: "Marketing spend is %.0f%% above the trailing average. Pause campaigns without bookings attributed to them.",
			},
			domain.LanguageGeorgian: {
				title:       "მარკეტინგის ხარჯების გადახედვა",
				description: "მარკეტინგის ხარჯი საშუალოზე %.0f%%-ით მაღალია. შეაჩერეთ კამპანიები, რომლებსაც ჯავშნები არ მოაქვს.",
			},
		},
	},
	{domain.MetricUtilitiesSpend, domain.DirectionIncrease}: {
		recType: domain.RecommendationTypeUtilities,
		text: map[domain.Language]localizedText{
			domain.LanguageEnglish: {
				title:       "Audit utility bills",
				description: "Utilities are %.0f%% above the trailing average. Compare meter readings with the bills and check for leaks.",
			},
			domain.LanguageGeorgian: {
				title:       "კომუნალური გადასახადების შემოწმება",
				description: "კომუნალური ხარჯი საშუალოზე %.0f%%-ით მაღალია. შეადარეთ მრიცხველის ჩვენებები ქვითრებს.",
			},
		},
	},
	{domain.MetricOccupancyPercent, domain.DirectionDecrease}: {
		recType: domain.RecommendationTypePricing,
		text: map[domain.Language]localizedText{
			domain.LanguageEnglish: {
				title:       "Adjust rates to recover occupancy",
				description: "Occupancy is %.0f points below the trailing average. Review rates for the coming weeks and open more channels.",
			},
			domain.LanguageGeorgian: {
				title:       "ფასების კორექტირება დატვირთვის აღსადგენად",
				description: "დატვირთვა საშუალოზე %.0f პუნქტით დაბალია. გადახედეთ ფასებს მომდევნო კვირებისთვის.",
			},
		},
	},
}

var typeLabels = map[domain.Language]map[domain.RecommendationType]string{
	domain.LanguageEnglish: {
		domain.RecommendationTypeRevenue:   "Revenue review",
		domain.RecommendationTypeMarketing: "Marketing spend",
		domain.RecommendationTypeUtilities: "Utilities audit",
		domain.RecommendationTypePricing:   "Pricing & occupancy",
		domain.RecommendationTypeGeneral:   "General",
	},
	domain.LanguageGeorgian: {
		domain.RecommendationTypeRevenue:   "შემოსავლის ანალიზი",
		domain.RecommendationTypeMarketing: "მარკეტინგის ხარჯები",
		domain.RecommendationTypeUtilities: "კომუნალური ხარჯები",
		domain.RecommendationTypePricing:   "ფასები და დატვირთვა",
		domain.RecommendationTypeGeneral:   "ზოგადი",
	},
}

func typeLabel(t domain.RecommendationType, lang domain.Language) string {
	labels, ok := typeLabels[lang]
	if !ok {
		labels = typeLabels[domain.LanguageEnglish]
	}
	if label, ok := labels[t]; ok {
		return label
	}
	return labels[domain.RecommendationTypeGeneral]
}

func priorityLabel(priority int, lang domain.Language) string {
	georgian := lang == domain.LanguageGeorgian

	switch {
	case priority >= 4:
		if georgian {
			return "მაღალი"
		}
		return "High"
	case priority == 3:
		if georgian {
			return "საშუალო"
		}
		return "Medium"
	default:
		if georgian {
			return "დაბალი"
		}
		return "Low"
	}
}

func priorityFor(severity domain.Severity) int {
	switch severity {
	case domain.SeverityHigh:
		return 5
	case domain.SeverityMedium:
		return 3
	default:
		return 2
	}
}

// estimatedImpact descreve o valor em jogo: a diferença mensal para a média
// ou, na ocupação, os pontos a recuperar
func estimatedImpact(a domain.Anomaly, lang domain.Language) string {
	gap := math.Abs(a.ActualValue - a.ExpectedValue)

	if a.DeviationUnit == domain.DeviationUnitPoints {
		if lang == domain.LanguageGeorgian {
			return fmt.Sprintf("+%.0f პუნქტი დატვირთვა", gap)
		}
		return fmt.Sprintf("+%.0f occupancy points", gap)
	}

	if lang == domain.LanguageGeorgian {
		return fmt.Sprintf("~%.0f ₾ თვეში", gap)
	}
	return fmt.Sprintf("~%.0f GEL per month", gap)
}

// fromAnomaly monta a recomendação sugerida para a anomalia (ok=false se não há regra)
func fromAnomaly(a domain.Anomaly, lang domain.Language) (*domain.Recommendation, bool) {
	r, ok := rules[ruleKey{metric: a.MetricName, direction: a.Direction}]
	if !ok {
		return nil, false
	}

	text, ok := r.text[lang]
	if !ok {
		text = r.text[domain.LanguageEnglish]
	}

	return &domain.Recommendation{
		Type:            r.recType,
		Title:           text.title,
		Description:     fmt.Sprintf(text.description, math.Abs(a.DeviationPercent)),
		EstimatedImpact: estimatedImpact(a, lang),
		Priority:        priorityFor(a.Severity),
	}, true
}
