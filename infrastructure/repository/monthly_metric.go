package repository

//go:generate mockgen -source=monthly_metric.go -destination=mocks/monthly_metric.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/finance-copilot-api/infrastructure/database"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/pkg/utils"
)

const (
	monthlyMetricsTable = "monthly_metrics mm"

	monthlyMetricColumns = "mm.year, mm.month, mm.total_revenue, mm.total_expenses, mm.total_profit, " +
		"mm.occupancy_percent, mm.average_price, mm.marketing_spend, mm.utilities_spend, mm.created_at, mm.updated_at"
)

type MonthlyMetricRepository interface {
	ListRecent(ctx context.Context, months int) ([]domain.MonthlyMetricRecord, error)
	SaveOrUpdate(ctx context.Context, record *domain.MonthlyMetricRecord) error
}

type monthlyMetricRepository struct {
	conn database.Conn
}

func NewMonthlyMetricRepository(conn database.Conn) MonthlyMetricRepository {
	return &monthlyMetricRepository{
		conn: conn,
	}
}

// ListRecent retorna os últimos N meses, do mais recente para o mais antigo
func (r *monthlyMetricRepository) ListRecent(ctx context.Context, months int) ([]domain.MonthlyMetricRecord, error) {
	if months <= 0 {
		return []domain.MonthlyMetricRecord{}, nil
	}

	query, args, err := squirrel.
		Select(monthlyMetricColumns).
		From(monthlyMetricsTable).
		OrderBy("mm.year DESC", "mm.month DESC").
		Limit(uint64(months)).
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

	records := make([]domain.MonthlyMetricRecord, 0, months)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas mensais: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// SaveOrUpdate insere o mês ou atualiza o registro existente (mês corrente ainda aberto)
func (r *monthlyMetricRepository) SaveOrUpdate(ctx context.Context, record *domain.MonthlyMetricRecord) error {
	id, err := utils.GeneratePrefixedID("mm")
	if err != nil {
		return fmt.Errorf("erro ao gerar id: %w", err)
	}

	now := time.Now().UTC()

	query, args, err := squirrel.
		Insert("monthly_metrics").
		Columns(
			"id", "year", "month", "total_revenue", "total_expenses", "total_profit",
			"occupancy_percent", "average_price", "marketing_spend", "utilities_spend",
			"created_at", "updated_at",
		).
		Values(
			id,
			record.Period.Year,
			int(record.Period.Month),
			record.TotalRevenue,
			record.TotalExpenses,
			record.TotalProfit,
			record.OccupancyPercent,
			record.AveragePrice,
			record.MarketingSpend,
			record.UtilitiesSpend,
			now,
			now,
		).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				total_revenue = EXCLUDED.total_revenue,
				total_expenses = EXCLUDED.total_expenses,
				total_profit = EXCLUDED.total_profit,
				occupancy_percent = EXCLUDED.occupancy_percent,
				average_price = EXCLUDED.average_price,
				marketing_spend = EXCLUDED.marketing_spend,
				utilities_spend = EXCLUDED.utilities_spend,
				updated_at = EXCLUDED.updated_at
		`).
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

func (r *monthlyMetricRepository) scanRecord(rows *sql.Rows) (*domain.MonthlyMetricRecord, error) {
	record := &domain.MonthlyMetricRecord{}
	var month int

	err := rows.Scan(
		&record.Period.Year,
		&month,
		&record.TotalRevenue,
		&record.TotalExpenses,
		&record.TotalProfit,
		&record.OccupancyPercent,
		&record.AveragePrice,
		&record.MarketingSpend,
		&record.UtilitiesSpend,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Period.Month = time.Month(month)
	return record, nil
}
