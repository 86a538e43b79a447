package repository

//go:generate mockgen -source=briefing.go -destination=mocks/briefing.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/finance-copilot-api/infrastructure/database"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	briefingsTable = "briefings b"
)

type BriefingRepository interface {
	GetByDateAndLanguage(ctx context.Context, date string, language domain.Language) (*domain.Briefing, error)
	Insert(ctx context.Context, briefing *domain.Briefing) error
	ReplaceExpired(ctx context.Context, briefing *domain.Briefing, now time.Time) error
	DeleteOlderThan(ctx context.Context, date string) (int64, error)
}

type briefingRepository struct {
	conn database.Conn
}

func NewBriefingRepository(conn database.Conn) BriefingRepository {
	return &briefingRepository{
		conn: conn,
	}
}

// GetByDateAndLanguage retorna nil quando não existe briefing para a chave
func (r *briefingRepository) GetByDateAndLanguage(ctx context.Context, date string, language domain.Language) (*domain.Briefing, error) {
	query, args, err := squirrel.
		Select("b.id, b.briefing_date, b.language, b.content, b.generated_at, b.expires_at").
		From(briefingsTable).
		Where(squirrel.Eq{"b.briefing_date": date, "b.language": string(language)}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	briefing := &domain.Briefing{}
	var content string
	var lang string

	if err := row.Scan(
		&briefing.ID,
		&briefing.BriefingDate,
		&lang,
		&content,
		&briefing.GeneratedAt,
		&briefing.ExpiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear briefing: %w", err)
	}

	briefing.Language = domain.Language(lang)
	if err := json.Unmarshal([]byte(content), &briefing.Content); err != nil {
		return nil, fmt.Errorf("erro ao deserializar conteúdo do briefing: %w", err)
	}

	return briefing, nil
}

// Insert grava um novo briefing. Retorna ErrBriefingExists se a chave
// (data, idioma) já estiver ocupada.
func (r *briefingRepository) Insert(ctx context.Context, briefing *domain.Briefing) error {
	content, err := json.Marshal(briefing.Content)
	if err != nil {
		return fmt.Errorf("erro ao serializar conteúdo do briefing: %w", err)
	}

	query, args, err := squirrel.
		Insert("briefings").
		Columns("id", "briefing_date", "language", "content", "generated_at", "expires_at").
		Values(
			briefing.ID,
			briefing.BriefingDate,
			string(briefing.Language),
			string(content),
			briefing.GeneratedAt.UTC(),
			briefing.ExpiresAt.UTC(),
		).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrBriefingExists
		}
		return execError(err)
	}

	return nil
}

// ReplaceExpired sobrescreve o briefing da chave somente se o registro atual já expirou.
// Se outro processo já gravou um briefing válido, retorna ErrBriefingExists.
func (r *briefingRepository) ReplaceExpired(ctx context.Context, briefing *domain.Briefing, now time.Time) error {
	content, err := json.Marshal(briefing.Content)
	if err != nil {
		return fmt.Errorf("erro ao serializar conteúdo do briefing: %w", err)
	}

	query, args, err := squirrel.
		Update("briefings").
		Set("id", briefing.ID).
		Set("content", string(content)).
		Set("generated_at", briefing.GeneratedAt.UTC()).
		Set("expires_at", briefing.ExpiresAt.UTC()).
		Where(squirrel.Eq{"briefing_date": briefing.BriefingDate, "language": string(briefing.Language)}).
		Where(squirrel.LtOrEq{"expires_at": now.UTC()}).
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

	if rowsAffected == 0 {
		return ErrBriefingExists
	}

	return nil
}

// DeleteOlderThan remove briefings com data anterior à informada (yyyy-mm-dd)
func (r *briefingRepository) DeleteOlderThan(ctx context.Context, date string) (int64, error) {
	query, args, err := squirrel.
		Delete("briefings").
		Where(squirrel.Lt{"briefing_date": date}).
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
