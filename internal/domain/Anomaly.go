package domain

import (
	"fmt"
	"time"
)

type AnomalyCategory string

const (
	AnomalyCategoryRevenue    AnomalyCategory = "revenue"
	AnomalyCategoryExpense    AnomalyCategory = "expense"
	AnomalyCategoryOperations AnomalyCategory = "operations"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank permite ordenar severidades (maior = mais grave)
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// DeviationUnit indica se o desvio é relativo (%) ou em pontos percentuais
type DeviationUnit string

const (
	DeviationUnitPercent DeviationUnit = "percent"
	DeviationUnitPoints  DeviationUnit = "points"
)

// Nomes das métricas acompanhadas, na ordem fixa de avaliação
const (
	MetricRevenue          = "revenue"
	MetricMarketingSpend   = "marketingSpend"
	MetricUtilitiesSpend   = "utilitiesSpend"
	MetricOccupancyPercent = "occupancyPercent"
)

type Anomaly struct {
	ID               string          `json:"id"`
	Category         AnomalyCategory `json:"category"`
	MetricName       string          `json:"metric_name"`
	ExpectedValue    float64         `json:"expected_value"`
	ActualValue      float64         `json:"actual_value"`
	DeviationPercent float64         `json:"deviation_percent"`
	DeviationUnit    DeviationUnit   `json:"deviation_unit"`
	Direction        Direction       `json:"direction"`
	Severity         Severity        `json:"severity"`
	Message          string          `json:"message,omitempty"`
	DetectedAt       time.Time       `json:"detected_at"`
	AcknowledgedAt   *time.Time      `json:"acknowledged_at"`
}

// AnomalyID monta o identificador determinístico (métrica + dia da detecção),
// que também é a chave de deduplicação das anomalias persistidas
func AnomalyID(metricName string, detectedAt time.Time) string {
	return fmt.Sprintf("%s-%s", metricName, detectedAt.Format("20060102"))
}

// AnomaliesResponse é o retorno da consulta de anomalias
type AnomaliesResponse struct {
	Anomalies []Anomaly `json:"anomalies"`
	Analyzed  int       `json:"analyzed"`
	Threshold int       `json:"threshold"`
}
