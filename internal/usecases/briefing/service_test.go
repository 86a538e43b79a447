package briefing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/finance-copilot-api/infrastructure/datasource"
	narrativedomain "github.com/vfg2006/finance-copilot-api/infrastructure/integrator/narrative/domain"
	narrativemocks "github.com/vfg2006/finance-copilot-api/infrastructure/integrator/narrative/mocks"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	detectingmocks "github.com/vfg2006/finance-copilot-api/internal/usecases/detecting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Copilot: config.Copilot{
			Timezone:         "UTC",
			LookbackMonths:   6,
			ThresholdPercent: 20,
			PropertyName:     "Rustaveli Aparthotel",
		},
	}
}

// demoEvaluation usa o conjunto de demonstração: só o marketing (+40%) é anômalo
func demoEvaluation(t *testing.T) *detecting.Evaluation {
	t.Helper()

	sample, err := detecting.Sample(datasource.DemoDataset(now), 6)
	require.NoError(t, err)

	return &detecting.Evaluation{
		Latest:    &sample.Latest,
		Sample:    sample,
		Anomalies: detecting.Detect(domain.MetricSetOf(sample.Latest), sample.TrailingAverage, 20, now),
		Analyzed:  sample.Analyzed,
		Threshold: 20,
	}
}

type briefingMocks struct {
	repo      *mocks.MockBriefingRepository
	anomalies *detectingmocks.MockAnomalyService
	narrator  *narrativemocks.MockNarrator
}

func newTestService(ctrl *gomock.Controller, at time.Time, loc *time.Location) (*Service, briefingMocks) {
	m := briefingMocks{
		repo:      mocks.NewMockBriefingRepository(ctrl),
		anomalies: detectingmocks.NewMockAnomalyService(ctrl),
		narrator:  narrativemocks.NewMockNarrator(ctrl),
	}

	s := NewService(testConfig(), m.repo, m.anomalies, m.narrator)
	s.location = loc
	s.now = func() time.Time { return at }
	s.cache.now = s.now
	return s, m
}

func TestService_GetDailyBriefing_WithNarrative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, now, time.UTC)

	m.repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).Return(nil, nil)
	m.anomalies.EXPECT().Evaluate(gomock.Any(), 6, 20).Return(demoEvaluation(t), nil)
	m.narrator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, system, contextJSON string) (string, error) {
			assert.Contains(t, system, "English")
			assert.Contains(t, contextJSON, `"property":"Rustaveli Aparthotel"`)
			assert.Contains(t, contextJSON, "Marketing spend increased 40%")
			return "```json\n{\"greeting\": \"Good morning!\", \"summary\": \"Marketing spend is well above average.\"}\n```", nil
		})
	m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	view, err := s.GetDailyBriefing(context.Background(), domain.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, "Good morning!", view.Greeting)
	assert.Equal(t, "Marketing spend is well above average.", view.Summary)
	assert.False(t, view.Cached)
	assert.Equal(t, now, view.GeneratedAt)
	assert.Equal(t, domain.DateInfo{Date: today, Weekday: "Friday", Timezone: "UTC"}, view.DateInfo)

	assert.Equal(t, []domain.KeyMetric{
		{Label: "Revenue", Value: 92000, Change: 3, Trend: domain.TrendUp},
		{Label: "Expenses", Value: 62000, Change: 7, Trend: domain.TrendUp},
		{Label: "Profit", Value: 30000, Change: -4, Trend: domain.TrendDown},
		{Label: "Occupancy", Value: 72, Change: 2, Trend: domain.TrendUp},
		{Label: "Average price", Value: 160, Change: 3, Trend: domain.TrendUp},
	}, view.KeyMetrics)

	require.Len(t, view.Anomalies, 1)
	assert.Equal(t, domain.SeverityHigh, view.Anomalies[0].Severity)
	assert.Equal(t, 40.0, view.Anomalies[0].Value)
	assert.Equal(t, "Marketing spend increased 40% vs the trailing average (9800 vs 7000)", view.Anomalies[0].Message)
}

func TestService_GetDailyBriefing_NarrativeFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(n *narrativemocks.MockNarrator)
		lang     domain.Language
		greeting string
		summary  string
	}{
		{
			name: "Provedor indisponível",
			setup: func(n *narrativemocks.MockNarrator) {
				n.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", &narrativedomain.ExternalServiceError{
					Provider: config.ProviderNone,
					Err:      narrativedomain.ErrNarrativeUnavailable,
				})
			},
			lang:     domain.LanguageEnglish,
			greeting: "Good morning",
			summary:  "Today's key numbers are ready. 1 anomaly needs your attention.",
		},
		{
			name: "Campo desconhecido na resposta",
			setup: func(n *narrativemocks.MockNarrator) {
				n.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(`{"greeting":"Hi","summary":"Ok","mood":"happy"}`, nil)
				n.EXPECT().Provider().Return(config.ProviderOpenAI)
			},
			lang:     domain.LanguageEnglish,
			greeting: "Good morning",
			summary:  "Today's key numbers are ready. 1 anomaly needs your attention.",
		},
		{
			name: "Timeout em georgiano",
			setup: func(n *narrativemocks.MockNarrator) {
				n.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", &narrativedomain.ExternalServiceError{
					Provider: config.ProviderGemini,
					Err:      context.DeadlineExceeded,
				})
			},
			lang:     domain.LanguageGeorgian,
			greeting: "დილა მშვიდობისა",
			summary:  "დღევანდელი ძირითადი მაჩვენებლები მზადაა. ყურადღებას საჭიროებს 1 ანომალია.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(ctrl, now, time.UTC)

			m.repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, tt.lang).Return(nil, nil)
			m.anomalies.EXPECT().Evaluate(gomock.Any(), 6, 20).Return(demoEvaluation(t), nil)
			tt.setup(m.narrator)
			m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

			view, err := s.GetDailyBriefing(context.Background(), tt.lang)
			require.NoError(t, err)

			assert.Equal(t, tt.greeting, view.Greeting)
			assert.Equal(t, tt.summary, view.Summary)
			assert.Len(t, view.KeyMetrics, 5)
			assert.Len(t, view.Anomalies, 1)
		})
	}
}

func TestService_GetDailyBriefing_InsufficientData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, now, time.UTC)

	latest := datasource.DemoDataset(now)[0]
	m.repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).Return(nil, nil)
	m.anomalies.EXPECT().Evaluate(gomock.Any(), 6, 20).Return(&detecting.Evaluation{
		Latest:    &latest,
		Anomalies: []domain.Anomaly{},
		Analyzed:  1,
		Threshold: 20,
	}, nil)
	m.narrator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"greeting":"Hello","summary":"Only one month of data so far."}`, nil)
	m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	view, err := s.GetDailyBriefing(context.Background(), domain.LanguageEnglish)
	require.NoError(t, err)

	assert.Empty(t, view.Anomalies)
	require.Len(t, view.KeyMetrics, 5)
	for _, metric := range view.KeyMetrics {
		assert.Zero(t, metric.Change)
		assert.Equal(t, domain.TrendStable, metric.Trend)
	}
}

func TestService_GetDailyBriefing_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, now, time.UTC)

	m.repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).
		Return(storedBriefing("brf_stored", now.Add(time.Hour)), nil)

	view, err := s.GetDailyBriefing(context.Background(), domain.LanguageEnglish)
	require.NoError(t, err)

	assert.True(t, view.Cached)
	assert.Equal(t, "stored", view.Summary)
	assert.Equal(t, now.Add(time.Hour-briefingTTL), view.GeneratedAt)
}

func TestService_GetDailyBriefing_UsesPropertyTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 22:30 UTC de quinta já é sexta em Tbilisi (UTC+4)
	tbilisi := time.FixedZone("Asia/Tbilisi", 4*60*60)
	at := time.Date(2025, 3, 13, 22, 30, 0, 0, time.UTC)
	s, m := newTestService(ctrl, at, tbilisi)

	m.repo.EXPECT().GetByDateAndLanguage(gomock.Any(), "2025-03-14", domain.LanguageGeorgian).
		Return(storedBriefing("brf_stored", at.Add(time.Hour)), nil)

	view, err := s.GetDailyBriefing(context.Background(), domain.LanguageGeorgian)
	require.NoError(t, err)

	assert.Equal(t, domain.DateInfo{Date: "2025-03-14", Weekday: "პარასკევი", Timezone: "Asia/Tbilisi"}, view.DateInfo)
}

func TestService_GetDailyBriefing_DataSourceOutageServesDemo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, now, time.UTC)

	metrics := mocks.NewMockMonthlyMetricRepository(ctrl)
	metrics.EXPECT().ListRecent(gomock.Any(), 6).Return(nil, errors.New("dial tcp: connection refused"))

	source := datasource.WithFallback(datasource.NewLiveStore(metrics), datasource.NewDemoStore())
	s.anomalies = detecting.NewService(source, nil)

	m.repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).Return(nil, nil)
	m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	m.narrator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", &narrativedomain.ExternalServiceError{Provider: "none", Err: narrativedomain.ErrNarrativeUnavailable})

	view, err := s.GetDailyBriefing(context.Background(), domain.LanguageEnglish)
	require.NoError(t, err)
	require.NotNil(t, view)

	require.Len(t, view.KeyMetrics, 5)
	assert.Equal(t, 92000.0, view.KeyMetrics[0].Value)
	assert.Len(t, view.Anomalies, 1)
	assert.Equal(t, "Good morning", view.Greeting)
	assert.False(t, view.Cached)
}
