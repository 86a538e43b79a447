package domain

import "time"

type RecommendationStatus string

const (
	RecommendationStatusActive    RecommendationStatus = "active"
	RecommendationStatusConverted RecommendationStatus = "converted"
	RecommendationStatusDismissed RecommendationStatus = "dismissed"
	RecommendationStatusExpired   RecommendationStatus = "expired"
)

// IsTerminal indica se o status não admite mais transições
func (s RecommendationStatus) IsTerminal() bool {
	return s != RecommendationStatusActive
}

type RecommendationType string

const (
	RecommendationTypeRevenue   RecommendationType = "revenue_review"
	RecommendationTypeMarketing RecommendationType = "marketing_review"
	RecommendationTypeUtilities RecommendationType = "utilities_audit"
	RecommendationTypePricing   RecommendationType = "occupancy_pricing"
	RecommendationTypeGeneral   RecommendationType = "general"
)

const (
	MinRecommendationPriority = 1
	MaxRecommendationPriority = 5
)

type Recommendation struct {
	ID              string               `json:"id"`
	Type            RecommendationType   `json:"type"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	EstimatedImpact string               `json:"estimated_impact"`
	Priority        int                  `json:"priority"`
	Status          RecommendationStatus `json:"status"`
	RelatedTaskID   *string              `json:"related_task_id"`
	TypeLabel       string               `json:"type_label,omitempty"`
	PriorityLabel   string               `json:"priority_label,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type RecommendationsResponse struct {
	Recommendations []*Recommendation `json:"recommendations"`
}

type TaskFromRecommendationResponse struct {
	Task             *Task  `json:"task"`
	RecommendationID string `json:"recommendationId"`
}
