package repository

//go:generate mockgen -source=recommendation.go -destination=mocks/recommendation.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/finance-copilot-api/infrastructure/database"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

const (
	recommendationsTable = "recommendations r"

	recommendationColumns = "r.id, r.type, r.title, r.description, r.estimated_impact, r.priority, " +
		"r.status, r.related_task_id, r.created_at, r.updated_at"
)

type RecommendationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Recommendation, error)
	ListByStatus(ctx context.Context, status domain.RecommendationStatus, limit int) ([]*domain.Recommendation, error)
	Create(ctx context.Context, recommendation *domain.Recommendation) error
	ExistsActiveByType(ctx context.Context, recType domain.RecommendationType) (bool, error)
	ConvertToTask(ctx context.Context, id string, task *domain.Task) (*domain.Task, error)
	Dismiss(ctx context.Context, id string, now time.Time) error
	ExpireOlderThan(ctx context.Context, cutoff, now time.Time) (int64, error)
}

type recommendationRepository struct {
	conn database.Conn
}

func NewRecommendationRepository(conn database.Conn) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

func (r *recommendationRepository) GetByID(ctx context.Context, id string) (*domain.Recommendation, error) {
	return r.getByID(ctx, r.conn, id)
}

func (r *recommendationRepository) getByID(ctx context.Context, q database.Queryer, id string) (*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rec, err := scanRecommendation(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
	}

	return rec, nil
}

// ListByStatus ordena por prioridade (maior primeiro) e, no empate, pela ordem de criação
func (r *recommendationRepository) ListByStatus(ctx context.Context, status domain.RecommendationStatus, limit int) ([]*domain.Recommendation, error) {
	builder := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{"r.status": string(status)}).
		OrderBy("r.priority DESC", "r.created_at ASC", "r.id ASC").
		PlaceholderFormat(r.conn.Placeholder())

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	recommendations := make([]*domain.Recommendation, 0)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
		}
		recommendations = append(recommendations, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return recommendations, nil
}

func (r *recommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	query, args, err := squirrel.
		Insert("recommendations").
		Columns("id", "type", "title", "description", "estimated_impact", "priority", "status", "related_task_id", "created_at", "updated_at").
		Values(
			rec.ID,
			string(rec.Type),
			rec.Title,
			rec.Description,
			rec.EstimatedImpact,
			rec.Priority,
			string(rec.Status),
			rec.RelatedTaskID,
			rec.CreatedAt.UTC(),
			rec.UpdatedAt.UTC(),
		).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return execError(err)
	}

	return nil
}

func (r *recommendationRepository) ExistsActiveByType(ctx context.Context, recType domain.RecommendationType) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(recommendationsTable).
		Where(squirrel.Eq{"r.type": string(recType), "r.status": string(domain.RecommendationStatusActive)}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, execError(err)
	}

	return count > 0, nil
}

// ConvertToTask cria a tarefa e marca a recomendação como convertida numa única transação.
// A tarefa recebida traz id, status, origem e data; título, descrição, impacto e
// prioridade são copiados da recomendação lida dentro da transação.
func (r *recommendationRepository) ConvertToTask(ctx context.Context, id string, task *domain.Task) (*domain.Task, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		rec, err := r.getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrRecommendationNotFound
		}
		if rec.Status != domain.RecommendationStatusActive {
			return ErrRecommendationNotActive
		}

		task.Title = rec.Title
		task.Description = rec.Description
		task.EstimatedImpact = rec.EstimatedImpact
		task.Priority = rec.Priority
		task.RecommendationID = rec.ID

		if err := insertTask(ctx, tx, r.conn.Placeholder(), task); err != nil {
			return err
		}

		// Transição condicional: só converte se ainda estiver ativa
		query, args, err := squirrel.
			Update("recommendations").
			Set("status", string(domain.RecommendationStatusConverted)).
			Set("related_task_id", task.ID).
			Set("updated_at", task.CreatedAt.UTC()).
			Where(squirrel.Eq{"id": id, "status": string(domain.RecommendationStatusActive)}).
			PlaceholderFormat(r.conn.Placeholder()).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return execError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		if rowsAffected == 0 {
			return ErrRecommendationNotActive
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Dismiss descarta uma recomendação ativa. Retorna ErrRecommendationNotFound
// quando o id não existe e ErrRecommendationNotActive quando já está em estado final.
func (r *recommendationRepository) Dismiss(ctx context.Context, id string, now time.Time) error {
	query, args, err := squirrel.
		Update("recommendations").
		Set("status", string(domain.RecommendationStatusDismissed)).
		Set("updated_at", now.UTC()).
		Where(squirrel.Eq{"id": id, "status": string(domain.RecommendationStatusActive)}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return execError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// Nenhuma linha alterada: descobrir se não existe ou se já está finalizada
	rec, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrRecommendationNotFound
	}

	return ErrRecommendationNotActive
}

// ExpireOlderThan move para expired as recomendações ativas criadas antes do corte
func (r *recommendationRepository) ExpireOlderThan(ctx context.Context, cutoff, now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("recommendations").
		Set("status", string(domain.RecommendationStatusExpired)).
		Set("updated_at", now.UTC()).
		Where(squirrel.Eq{"status": string(domain.RecommendationStatusActive)}).
		Where(squirrel.Lt{"created_at": cutoff.UTC()}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, execError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanRecommendation(row rowScanner) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{}
	var recType, status string
	var relatedTaskID sql.NullString

	if err := row.Scan(
		&rec.ID,
		&recType,
		&rec.Title,
		&rec.Description,
		&rec.EstimatedImpact,
		&rec.Priority,
		&status,
		&relatedTaskID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rec.Type = domain.RecommendationType(recType)
	rec.Status = domain.RecommendationStatus(status)
	if relatedTaskID.Valid {
		rec.RelatedTaskID = &relatedTaskID.String
	}

	return rec, nil
}
