package datasource

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

// Seis meses fixos, do mais recente para o mais antigo. O mês mais recente
// traz um salto de marketing (+40% sobre a média) para a demo exibir uma anomalia.
var demoMonths = []struct {
	revenue      int64
	marketing    int64
	utilities    int64
	otherExpense int64
	occupancy    float64
	averagePrice int64
}{
	{revenue: 92000, marketing: 9800, utilities: 4200, otherExpense: 48000, occupancy: 72, averagePrice: 160},
	{revenue: 115000, marketing: 7200, utilities: 4000, otherExpense: 50000, occupancy: 70, averagePrice: 175},
	{revenue: 105000, marketing: 6800, utilities: 4300, otherExpense: 49000, occupancy: 74, averagePrice: 170},
	{revenue: 82000, marketing: 7100, utilities: 4100, otherExpense: 46000, occupancy: 68, averagePrice: 150},
	{revenue: 75000, marketing: 6900, utilities: 3900, otherExpense: 45000, occupancy: 66, averagePrice: 145},
	{revenue: 68000, marketing: 7000, utilities: 4200, otherExpense: 44000, occupancy: 72, averagePrice: 140},
}

// DemoStore devolve o conjunto fixo de demonstração relativo ao mês corrente
type DemoStore struct {
	now func() time.Time
}

func NewDemoStore() *DemoStore {
	return &DemoStore{now: time.Now}
}

func (s *DemoStore) ListRecentMetrics(_ context.Context, months int) ([]domain.MonthlyMetricRecord, error) {
	dataset := DemoDataset(s.now())
	if months < 0 {
		months = 0
	}
	if months < len(dataset) {
		dataset = dataset[:months]
	}
	return dataset, nil
}

func (s *DemoStore) Name() string {
	return NameDemo
}

// DemoDataset monta os seis meses de demonstração terminando no mês de now
func DemoDataset(now time.Time) []domain.MonthlyMetricRecord {
	current := domain.PeriodOf(now.UTC())
	records := make([]domain.MonthlyMetricRecord, 0, len(demoMonths))

	for i, m := range demoMonths {
		revenue := decimal.NewFromInt(m.revenue)
		marketing := decimal.NewFromInt(m.marketing)
		utilities := decimal.NewFromInt(m.utilities)
		expenses := marketing.Add(utilities).Add(decimal.NewFromInt(m.otherExpense))

		records = append(records, domain.MonthlyMetricRecord{
			Period:           current.AddMonths(-i),
			TotalRevenue:     revenue,
			TotalExpenses:    expenses,
			TotalProfit:      revenue.Sub(expenses),
			OccupancyPercent: m.occupancy,
			AveragePrice:     decimal.NewFromInt(m.averagePrice),
			MarketingSpend:   marketing,
			UtilitiesSpend:   utilities,
			CreatedAt:        now.UTC(),
			UpdatedAt:        now.UTC(),
		})
	}

	return records
}
