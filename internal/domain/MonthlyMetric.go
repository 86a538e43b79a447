// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period identifica um mês do calendário
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PeriodOf retorna o período (mês) de uma data
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// AddMonths desloca o período em n meses (n pode ser negativo)
func (p Period) AddMonths(n int) Period {
	t := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return PeriodOf(t)
}

// Before indica se o período é anterior a outro
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// String retorna o período no formato mm-yyyy, o mesmo usado nos relatórios mensais
func (p Period) String() string {
	return fmt.Sprintf("%02d-%04d", int(p.Month), p.Year)
}

// MonthlyMetricRecord representa o fechamento financeiro de um mês da propriedade
type MonthlyMetricRecord struct {
	Period           Period          `json:"period"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	OccupancyPercent float64         `json:"occupancy_percent"`
	AveragePrice     decimal.Decimal `json:"average_price"`
	MarketingSpend   decimal.Decimal `json:"marketing_spend"`
	UtilitiesSpend   decimal.Decimal `json:"utilities_spend"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MetricSet é a visão numérica (float64) das métricas acompanhadas pelo detector
type MetricSet struct {
	Revenue          float64 `json:"revenue"`
	Expenses         float64 `json:"expenses"`
	Profit           float64 `json:"profit"`
	OccupancyPercent float64 `json:"occupancy_percent"`
	AveragePrice     float64 `json:"average_price"`
	MarketingSpend   float64 `json:"marketing_spend"`
	UtilitiesSpend   float64 `json:"utilities_spend"`
}

// MetricSetOf converte um registro mensal em MetricSet
func MetricSetOf(r MonthlyMetricRecord) MetricSet {
	return MetricSet{
		Revenue:          r.TotalRevenue.InexactFloat64(),
		Expenses:         r.TotalExpenses.InexactFloat64(),
		Profit:           r.TotalProfit.InexactFloat64(),
		OccupancyPercent: r.OccupancyPercent,
		AveragePrice:     r.AveragePrice.InexactFloat64(),
		MarketingSpend:   r.MarketingSpend.InexactFloat64(),
		UtilitiesSpend:   r.UtilitiesSpend.InexactFloat64(),
	}
}
