package briefing

import (
	"fmt"
	"time"

	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

const (
	keyRevenue      = "revenue"
	keyExpenses     = "expenses"
	keyProfit       = "profit"
	keyOccupancy    = "occupancy"
	keyAveragePrice = "averagePrice"
)

var keyMetricLabels = map[domain.Language]map[string]string{
	domain.LanguageGeorgian: {
		keyRevenue:      "შემოსავალი",
		keyExpenses:     "ხარჯები",
		keyProfit:       "მოგება",
		keyOccupancy:    "დატვირთვა",
		keyAveragePrice: "საშუალო ფასი",
	},
	domain.LanguageEnglish: {
		keyRevenue:      "Revenue",
		keyExpenses:     "Expenses",
		keyProfit:       "Profit",
		keyOccupancy:    "Occupancy",
		keyAveragePrice: "Average price",
	},
}

var georgianWeekdays = [...]string{
	time.Sunday:    "კვირა",
	time.Monday:    "ორშაბათი",
	time.Tuesday:   "სამშაბათი",
	time.Wednesday: "ოთხშაბათი",
	time.Thursday:  "ხუთშაბათი",
	time.Friday:    "პარასკევი",
	time.Saturday:  "შაბათი",
}

func keyMetricLabel(key string, lang domain.Language) string {
	if labels, ok := keyMetricLabels[lang]; ok {
		return labels[key]
	}
	return keyMetricLabels[domain.LanguageEnglish][key]
}

func weekdayName(d time.Weekday, lang domain.Language) string {
	if lang == domain.LanguageGeorgian {
		return georgianWeekdays[d]
	}
	return d.String()
}

func defaultGreeting(at time.Time, lang domain.Language) string {
	hour := at.Hour()

	if lang == domain.LanguageGeorgian {
		if hour >= 5 && hour < 12 {
			return "დილა მშვიდობისა"
		}
		if hour >= 18 {
			return "საღამო მშვიდობისა"
		}
		return "გამარჯობა"
	}

	switch {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// placeholderSummary é usado quando o serviço de narrativa falha
func placeholderSummary(anomalies int, lang domain.Language) string {
	if lang == domain.LanguageGeorgian {
		if anomalies == 0 {
			return "დღევანდელი ძირითადი მაჩვენებლები მზადაა. ანომალიები არ გამოვლენილა."
		}
		return fmt.Sprintf("დღევანდელი ძირითადი მაჩვენებლები მზადაა. ყურადღებას საჭიროებს %d ანომალია.", anomalies)
	}

	if anomalies == 0 {
		return "Today's key numbers are ready. No anomalies were detected."
	}
	if anomalies == 1 {
		return "Today's key numbers are ready. 1 anomaly needs your attention."
	}
	return fmt.Sprintf("Today's key numbers are ready. %d anomalies need your attention.", anomalies)
}

func languageName(lang domain.Language) string {
	if lang == domain.LanguageGeorgian {
		return "Georgian"
	}
	return "English"
}

// systemInstruction orienta o modelo a responder apenas com {greeting, summary}
func systemInstruction(lang domain.Language) string {
	return fmt.Sprintf(`You are the financial copilot of a small aparthotel.
You receive a JSON document with this month's key metrics and the detected anomalies.
Write a short greeting and a summary of at most four sentences for the owner, in %s.
Mention the most severe anomalies first and suggest where to look. Do not invent numbers.
Answer with a single JSON object and nothing else: {"greeting": "...", "summary": "..."}`, languageName(lang))
}
