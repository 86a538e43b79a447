package repository

//go:generate mockgen -source=task.go -destination=mocks/task.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/finance-copilot-api/infrastructure/database"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

const (
	tasksTable = "tasks t"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByRecommendation(ctx context.Context, recommendationID string) ([]*domain.Task, error)
}

type taskRepository struct {
	conn database.Conn
}

func NewTaskRepository(conn database.Conn) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query, args, err := r.selectTasks().
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	task, err := scanTask(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tarefa: %w", err)
	}

	return task, nil
}

func (r *taskRepository) ListByRecommendation(ctx context.Context, recommendationID string) ([]*domain.Task, error) {
	query, args, err := r.selectTasks().
		Where(squirrel.Eq{"t.recommendation_id": recommendationID}).
		OrderBy("t.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tarefa: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) selectTasks() squirrel.SelectBuilder {
	return squirrel.
		Select("t.id, t.title, t.description, t.estimated_impact, t.priority, t.status, t.source, t.recommendation_id, t.created_at").
		From(tasksTable).
		PlaceholderFormat(r.conn.Placeholder())
}

// insertTask grava a tarefa usando o Queryer recebido (conexão ou transação)
func insertTask(ctx context.Context, q database.Queryer, placeholder squirrel.PlaceholderFormat, task *domain.Task) error {
	query, args, err := squirrel.
		Insert("tasks").
		Columns("id", "title", "description", "estimated_impact", "priority", "status", "source", "recommendation_id", "created_at").
		Values(
			task.ID,
			task.Title,
			task.Description,
			task.EstimatedImpact,
			task.Priority,
			task.Status,
			task.Source,
			task.RecommendationID,
			task.CreatedAt.UTC(),
		).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return execError(err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var recommendationID sql.NullString

	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.EstimatedImpact,
		&task.Priority,
		&task.Status,
		&task.Source,
		&recommendationID,
		&task.CreatedAt,
	); err != nil {
		return nil, err
	}

	task.RecommendationID = recommendationID.String
	return task, nil
}
