package detecting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

// MetricSample é o resultado da amostragem: o mês mais recente e a média dos anteriores
type MetricSample struct {
	Latest          domain.MonthlyMetricRecord
	TrailingAverage domain.MetricSet
	// Analyzed é o total de meses considerados (o mais recente + os anteriores)
	Analyzed int
}

// Sample calcula a média móvel dos registros 1..windowSize-1, excluindo o mais
// recente (índice 0). Os registros devem vir do mais recente para o mais antigo.
// Com menos de 2 registros retorna *InsufficientDataError.
func Sample(records []domain.MonthlyMetricRecord, windowSize int) (*MetricSample, error) {
	if windowSize < 2 {
		windowSize = 2
	}

	if len(records) < 2 {
		return nil, &InsufficientDataError{Available: len(records), Required: 2}
	}

	priors := records[1:]
	if len(priors) > windowSize-1 {
		priors = priors[:windowSize-1]
	}

	var revenue, expenses, profit, occupancy, averagePrice, marketing, utilities decimal.Decimal
	for _, r := range priors {
		revenue = revenue.Add(r.TotalRevenue)
		expenses = expenses.Add(r.TotalExpenses)
		profit = profit.Add(r.TotalProfit)
		occupancy = occupancy.Add(decimal.NewFromFloat(r.OccupancyPercent))
		averagePrice = averagePrice.Add(r.AveragePrice)
		marketing = marketing.Add(r.MarketingSpend)
		utilities = utilities.Add(r.UtilitiesSpend)
	}

	n := decimal.NewFromInt(int64(len(priors)))
	mean := func(sum decimal.Decimal) float64 {
		return sum.Div(n).InexactFloat64()
	}

	return &MetricSample{
		Latest: records[0],
		TrailingAverage: domain.MetricSet{
			Revenue:          mean(revenue),
			Expenses:         mean(expenses),
			Profit:           mean(profit),
			OccupancyPercent: mean(occupancy),
			AveragePrice:     mean(averagePrice),
			MarketingSpend:   mean(marketing),
			UtilitiesSpend:   mean(utilities),
		},
		Analyzed: len(priors) + 1,
	}, nil
}
