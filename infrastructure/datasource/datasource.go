// Package datasource fornece os registros financeiros mensais consumidos pelo copiloto.
// A implementação é escolhida uma única vez na inicialização (live ou demo).
package datasource

//go:generate mockgen -source=datasource.go -destination=mocks/datasource.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

const (
	NameLive = "live"
	NameDemo = "demo"
)

type DataSource interface {
	// ListRecentMetrics retorna até N meses, do mais recente para o mais antigo
	ListRecentMetrics(ctx context.Context, months int) ([]domain.MonthlyMetricRecord, error)
	Name() string
}

// LiveStore lê os fechamentos mensais do banco
type LiveStore struct {
	repo repository.MonthlyMetricRepository
}

func NewLiveStore(repo repository.MonthlyMetricRepository) *LiveStore {
	return &LiveStore{repo: repo}
}

func (s *LiveStore) ListRecentMetrics(ctx context.Context, months int) ([]domain.MonthlyMetricRecord, error) {
	records, err := s.repo.ListRecent(ctx, months)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas mensais: %w", err)
	}
	return records, nil
}

func (s *LiveStore) Name() string {
	return NameLive
}
