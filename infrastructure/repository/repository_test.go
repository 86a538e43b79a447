package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/finance-copilot-api/infrastructure/database"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

func newTestConn(t *testing.T) *database.Connection {
	t.Helper()

	conn, err := database.OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func metricRecord(year int, month time.Month, revenue int64) *domain.MonthlyMetricRecord {
	return &domain.MonthlyMetricRecord{
		Period:           domain.Period{Year: year, Month: month},
		TotalRevenue:     decimal.NewFromInt(revenue),
		TotalExpenses:    decimal.NewFromInt(revenue / 2),
		TotalProfit:      decimal.NewFromInt(revenue - revenue/2),
		OccupancyPercent: 71.5,
		AveragePrice:     decimal.RequireFromString("152.75"),
		MarketingSpend:   decimal.NewFromInt(7000),
		UtilitiesSpend:   decimal.NewFromInt(4100),
	}
}

func TestMonthlyMetricRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMonthlyMetricRepository(newTestConn(t))

	require.NoError(t, repo.SaveOrUpdate(ctx, metricRecord(2024, time.December, 80000)))
	require.NoError(t, repo.SaveOrUpdate(ctx, metricRecord(2025, time.February, 92000)))
	require.NoError(t, repo.SaveOrUpdate(ctx, metricRecord(2025, time.January, 85000)))

	t.Run("Mais recente primeiro", func(t *testing.T) {
		records, err := repo.ListRecent(ctx, 6)
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, domain.Period{Year: 2025, Month: time.February}, records[0].Period)
		assert.Equal(t, domain.Period{Year: 2025, Month: time.January}, records[1].Period)
		assert.Equal(t, domain.Period{Year: 2024, Month: time.December}, records[2].Period)
		assert.True(t, records[0].AveragePrice.Equal(decimal.RequireFromString("152.75")))
		assert.Equal(t, 71.5, records[0].OccupancyPercent)
	})

	t.Run("Limite de meses", func(t *testing.T) {
		records, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("Mês corrente é atualizado, não duplicado", func(t *testing.T) {
		require.NoError(t, repo.SaveOrUpdate(ctx, metricRecord(2025, time.February, 99000)))

		records, err := repo.ListRecent(ctx, 6)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.True(t, records[0].TotalRevenue.Equal(decimal.NewFromInt(99000)))
	})
}

func testBriefing(date string, lang domain.Language, generatedAt time.Time) *domain.Briefing {
	return &domain.Briefing{
		ID:           "brf_" + date + string(lang),
		BriefingDate: date,
		Language:     lang,
		Content: domain.BriefingContent{
			Greeting:   "Good morning",
			Summary:    "Revenue is stable.",
			KeyMetrics: []domain.KeyMetric{{Label: "Revenue", Value: 92000, Change: 3, Trend: domain.TrendStable}},
			Anomalies:  []domain.BriefingAnomaly{},
		},
		GeneratedAt: generatedAt,
		ExpiresAt:   generatedAt.Add(24 * time.Hour),
	}
}

func TestBriefingRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBriefingRepository(newTestConn(t))
	generatedAt := time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC)

	t.Run("Sem briefing retorna nil", func(t *testing.T) {
		got, err := repo.GetByDateAndLanguage(ctx, "2025-03-14", domain.LanguageEnglish)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Insere e lê o mesmo conteúdo", func(t *testing.T) {
		b := testBriefing("2025-03-14", domain.LanguageEnglish, generatedAt)
		require.NoError(t, repo.Insert(ctx, b))

		got, err := repo.GetByDateAndLanguage(ctx, "2025-03-14", domain.LanguageEnglish)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, b.Content, got.Content)
		assert.True(t, b.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("Mesma data e idioma é conflito", func(t *testing.T) {
		b := testBriefing("2025-03-14", domain.LanguageEnglish, generatedAt)
		b.ID = "brf_other"

		err := repo.Insert(ctx, b)
		assert.ErrorIs(t, err, ErrBriefingExists)
	})

	t.Run("Outro idioma não conflita", func(t *testing.T) {
		require.NoError(t, repo.Insert(ctx, testBriefing("2025-03-14", domain.LanguageGeorgian, generatedAt)))
	})

	t.Run("Substituição só acontece se o atual expirou", func(t *testing.T) {
		newer := testBriefing("2025-03-14", domain.LanguageEnglish, generatedAt.Add(25*time.Hour))
		newer.ID = "brf_newer"
		newer.Content.Summary = "Updated"

		err := repo.ReplaceExpired(ctx, newer, generatedAt.Add(time.Hour))
		assert.ErrorIs(t, err, ErrBriefingExists)

		require.NoError(t, repo.ReplaceExpired(ctx, newer, generatedAt.Add(25*time.Hour)))

		got, err := repo.GetByDateAndLanguage(ctx, "2025-03-14", domain.LanguageEnglish)
		require.NoError(t, err)
		assert.Equal(t, "brf_newer", got.ID)
		assert.Equal(t, "Updated", got.Content.Summary)
	})

	t.Run("Remove briefings antigos", func(t *testing.T) {
		require.NoError(t, repo.Insert(ctx, testBriefing("2024-12-01", domain.LanguageEnglish, generatedAt)))

		deleted, err := repo.DeleteOlderThan(ctx, "2025-01-01")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})
}

func testRecommendation(id string, priority int, createdAt time.Time) *domain.Recommendation {
	return &domain.Recommendation{
		ID:              id,
		Type:            domain.RecommendationTypeMarketing,
		Title:           "Review marketing spend " + id,
		Description:     "Marketing spend is above the trailing average.",
		EstimatedImpact: "-2000 GEL/month",
		Priority:        priority,
		Status:          domain.RecommendationStatusActive,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func TestRecommendationRepository_ListByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRecommendationRepository(newTestConn(t))
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, testRecommendation("rec_a", 3, base)))
	require.NoError(t, repo.Create(ctx, testRecommendation("rec_b", 5, base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, testRecommendation("rec_c", 3, base.Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, testRecommendation("rec_d", 1, base)))

	got, err := repo.ListByStatus(ctx, domain.RecommendationStatusActive, 3)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	// Prioridade decrescente; empate pela ordem de criação
	assert.Equal(t, []string{"rec_b", "rec_c", "rec_a"}, ids)

	exists, err := repo.ExistsActiveByType(ctx, domain.RecommendationTypeMarketing)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsActiveByType(ctx, domain.RecommendationTypeUtilities)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRecommendationRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)
	repo := NewRecommendationRepository(conn)
	tasks := NewTaskRepository(conn)
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, testRecommendation("rec_convert", 4, now)))
	require.NoError(t, repo.Create(ctx, testRecommendation("rec_dismiss", 2, now)))

	newTask := func(id string) *domain.Task {
		return &domain.Task{ID: id, Status: domain.TaskStatusTodo, Source: domain.TaskSourceCopilot, CreatedAt: now}
	}

	t.Run("Converte em tarefa atomicamente", func(t *testing.T) {
		task, err := repo.ConvertToTask(ctx, "rec_convert", newTask("tsk_1"))
		require.NoError(t, err)
		assert.Equal(t, "Review marketing spend rec_convert", task.Title)
		assert.Equal(t, 4, task.Priority)
		assert.Equal(t, "rec_convert", task.RecommendationID)

		rec, err := repo.GetByID(ctx, "rec_convert")
		require.NoError(t, err)
		assert.Equal(t, domain.RecommendationStatusConverted, rec.Status)
		require.NotNil(t, rec.RelatedTaskID)
		assert.Equal(t, "tsk_1", *rec.RelatedTaskID)

		stored, err := tasks.GetByID(ctx, "tsk_1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, domain.TaskSourceCopilot, stored.Source)
	})

	t.Run("Converter de novo falha sem criar tarefa", func(t *testing.T) {
		_, err := repo.ConvertToTask(ctx, "rec_convert", newTask("tsk_2"))
		assert.ErrorIs(t, err, ErrRecommendationNotActive)

		stored, err := tasks.GetByID(ctx, "tsk_2")
		require.NoError(t, err)
		assert.Nil(t, stored)

		linked, err := tasks.ListByRecommendation(ctx, "rec_convert")
		require.NoError(t, err)
		assert.Len(t, linked, 1)
	})

	t.Run("Descartar convertida é estado inválido", func(t *testing.T) {
		assert.ErrorIs(t, repo.Dismiss(ctx, "rec_convert", now), ErrRecommendationNotActive)
	})

	t.Run("Descarta ativa", func(t *testing.T) {
		require.NoError(t, repo.Dismiss(ctx, "rec_dismiss", now))

		rec, err := repo.GetByID(ctx, "rec_dismiss")
		require.NoError(t, err)
		assert.Equal(t, domain.RecommendationStatusDismissed, rec.Status)
		assert.Nil(t, rec.RelatedTaskID)
	})

	t.Run("Converter descartada é estado inválido", func(t *testing.T) {
		_, err := repo.ConvertToTask(ctx, "rec_dismiss", newTask("tsk_3"))
		assert.ErrorIs(t, err, ErrRecommendationNotActive)
	})

	t.Run("Id desconhecido", func(t *testing.T) {
		assert.ErrorIs(t, repo.Dismiss(ctx, "rec_missing", now), ErrRecommendationNotFound)

		_, err := repo.ConvertToTask(ctx, "rec_missing", newTask("tsk_4"))
		assert.ErrorIs(t, err, ErrRecommendationNotFound)
	})
}

func TestRecommendationRepository_ExpireOlderThan(t *testing.T) {
	ctx := context.Background()
	repo := NewRecommendationRepository(newTestConn(t))
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, testRecommendation("rec_old", 3, now.AddDate(0, 0, -40))))
	require.NoError(t, repo.Create(ctx, testRecommendation("rec_new", 3, now.AddDate(0, 0, -2))))

	expired, err := repo.ExpireOlderThan(ctx, now.AddDate(0, 0, -30), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	rec, err := repo.GetByID(ctx, "rec_old")
	require.NoError(t, err)
	assert.Equal(t, domain.RecommendationStatusExpired, rec.Status)

	active, err := repo.ListByStatus(ctx, domain.RecommendationStatusActive, 10)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "rec_new", active[0].ID)
}

func TestAnomalyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAnomalyRepository(newTestConn(t))
	detectedAt := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	anomaly := domain.Anomaly{
		ID:               domain.AnomalyID(domain.MetricMarketingSpend, detectedAt),
		Category:         domain.AnomalyCategoryExpense,
		MetricName:       domain.MetricMarketingSpend,
		ExpectedValue:    7000,
		ActualValue:      9800,
		DeviationPercent: 40,
		DeviationUnit:    domain.DeviationUnitPercent,
		Direction:        domain.DirectionIncrease,
		Severity:         domain.SeverityHigh,
		DetectedAt:       detectedAt,
	}

	require.NoError(t, repo.SaveDetected(ctx, []domain.Anomaly{anomaly}))
	// Reavaliação no mesmo dia não duplica
	require.NoError(t, repo.SaveDetected(ctx, []domain.Anomaly{anomaly}))

	acknowledged, err := repo.AcknowledgedIDs(ctx, []string{anomaly.ID})
	require.NoError(t, err)
	assert.Empty(t, acknowledged)

	ackAt := detectedAt.Add(time.Hour)
	require.NoError(t, repo.Acknowledge(ctx, anomaly.ID, ackAt))
	// Reconhecer de novo mantém a primeira data
	require.NoError(t, repo.Acknowledge(ctx, anomaly.ID, ackAt.Add(time.Hour)))

	acknowledged, err = repo.AcknowledgedIDs(ctx, []string{anomaly.ID, "revenue-20250314"})
	require.NoError(t, err)
	require.Len(t, acknowledged, 1)
	assert.True(t, ackAt.Equal(acknowledged[anomaly.ID]))

	assert.ErrorIs(t, repo.Acknowledge(ctx, "revenue-20250314", ackAt), ErrAnomalyNotFound)
}
