package domain

import "time"

const (
	TaskStatusTodo    = "todo"
	TaskSourceCopilot = "copilot"
)

// Task representa uma tarefa operacional criada a partir de uma recomendação
type Task struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	EstimatedImpact  string    `json:"estimated_impact"`
	Priority         int       `json:"priority"`
	Status           string    `json:"status"`
	Source           string    `json:"source"`
	RecommendationID string    `json:"recommendation_id"`
	CreatedAt        time.Time `json:"created_at"`
}
