package datasource

import (
	"context"
	"fmt"

	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
)

// FallbackStore lê da fonte principal e, quando ela falha, serve a fonte
// reserva (normalmente a DemoStore) para o briefing não ficar sem resposta
type FallbackStore struct {
	primary  DataSource
	fallback DataSource
}

func WithFallback(primary, fallback DataSource) *FallbackStore {
	return &FallbackStore{primary: primary, fallback: fallback}
}

func (s *FallbackStore) ListRecentMetrics(ctx context.Context, months int) ([]domain.MonthlyMetricRecord, error) {
	records, err := s.primary.ListRecentMetrics(ctx, months)
	if err == nil {
		return records, nil
	}

	// Requisição cancelada não é indisponibilidade da fonte
	if ctx.Err() != nil {
		return nil, err
	}

	log.ForContext(ctx).WithError(err).WithFields(log.Fields{
		"data_source": s.primary.Name(),
		"fallback":    s.fallback.Name(),
	}).Warn("datasource: fonte principal indisponível, usando dados reserva")

	records, fallbackErr := s.fallback.ListRecentMetrics(ctx, months)
	if fallbackErr != nil {
		return nil, fmt.Errorf("erro na fonte reserva (%s): %w", s.fallback.Name(), fallbackErr)
	}

	return records, nil
}

func (s *FallbackStore) Name() string {
	return s.primary.Name()
}
