package repository

//go:generate mockgen -source=anomaly.go -destination=mocks/anomaly.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/finance-copilot-api/infrastructure/database"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

const (
	anomaliesTable = "anomalies an"
)

type AnomalyRepository interface {
	SaveDetected(ctx context.Context, anomalies []domain.Anomaly) error
	AcknowledgedIDs(ctx context.Context, ids []string) (map[string]time.Time, error)
	Acknowledge(ctx context.Context, id string, at time.Time) error
}

type anomalyRepository struct {
	conn database.Conn
}

func NewAnomalyRepository(conn database.Conn) AnomalyRepository {
	return &anomalyRepository{
		conn: conn,
	}
}

// SaveDetected registra as anomalias para auditoria. O id é determinístico
// (métrica + dia), então reavaliações no mesmo dia não duplicam registros.
func (r *anomalyRepository) SaveDetected(ctx context.Context, anomalies []domain.Anomaly) error {
	if len(anomalies) == 0 {
		return nil
	}

	builder := squirrel.
		Insert("anomalies").
		Columns(
			"id", "category", "metric_name", "expected_value", "actual_value",
			"deviation_percent", "deviation_unit", "direction", "severity", "detected_at",
		)

	for _, a := range anomalies {
		builder = builder.Values(
			a.ID,
			string(a.Category),
			a.MetricName,
			a.ExpectedValue,
			a.ActualValue,
			a.DeviationPercent,
			string(a.DeviationUnit),
			string(a.Direction),
			string(a.Severity),
			a.DetectedAt.UTC(),
		)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (id) DO NOTHING").
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

// AcknowledgedIDs retorna, entre os ids informados, os que já foram reconhecidos
func (r *anomalyRepository) AcknowledgedIDs(ctx context.Context, ids []string) (map[string]time.Time, error) {
	acknowledged := make(map[string]time.Time)
	if len(ids) == 0 {
		return acknowledged, nil
	}

	query, args, err := squirrel.
		Select("an.id, an.acknowledged_at").
		From(anomaliesTable).
		Where(squirrel.Eq{"an.id": ids}).
		Where(squirrel.NotEq{"an.acknowledged_at": nil}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var at time.Time
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("erro ao escanear anomalia: %w", err)
		}
		acknowledged[id] = at
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return acknowledged, nil
}

// Acknowledge marca a anomalia como reconhecida. Reconhecer de novo mantém a data original.
func (r *anomalyRepository) Acknowledge(ctx context.Context, id string, at time.Time) error {
	query, args, err := squirrel.
		Update("anomalies").
		Set("acknowledged_at", at.UTC()).
		Where(squirrel.Eq{"id": id, "acknowledged_at": nil}).
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

	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAnomalyNotFound
	}

	return nil
}

func (r *anomalyRepository) exists(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(anomaliesTable).
		Where(squirrel.Eq{"an.id": id}).
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
