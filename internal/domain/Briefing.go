package domain

import "time"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type KeyMetric struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
	Trend  Trend   `json:"trend"`
}

type BriefingAnomaly struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Value    float64  `json:"value"`
}

type BriefingContent struct {
	Greeting   string            `json:"greeting"`
	Summary    string            `json:"summary"`
	KeyMetrics []KeyMetric       `json:"keyMetrics"`
	Anomalies  []BriefingAnomaly `json:"anomalies"`
}

// Briefing é o resumo diário armazenado, único por (data, idioma)
type Briefing struct {
	ID           string          `json:"id"`
	BriefingDate string          `json:"briefing_date"` // Formato yyyy-mm-dd
	Language     Language        `json:"language"`
	Content      BriefingContent `json:"content"`
	GeneratedAt  time.Time       `json:"generated_at"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

// IsValidAt indica se o briefing ainda não expirou no instante informado
func (b *Briefing) IsValidAt(now time.Time) bool {
	return now.Before(b.ExpiresAt)
}

type DateInfo struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Timezone string `json:"timezone"`
}

// BriefingView é o formato devolvido para a interface
type BriefingView struct {
	Greeting    string            `json:"greeting"`
	Summary     string            `json:"summary"`
	KeyMetrics  []KeyMetric       `json:"keyMetrics"`
	Anomalies   []BriefingAnomaly `json:"anomalies"`
	Cached      bool              `json:"cached"`
	GeneratedAt time.Time         `json:"generatedAt"`
	DateInfo    DateInfo          `json:"dateInfo"`
}
