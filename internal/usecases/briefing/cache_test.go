package briefing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

const today = "2025-03-14"

func content(summary string) domain.BriefingContent {
	return domain.BriefingContent{
		Greeting:   "Good morning",
		Summary:    summary,
		KeyMetrics: []domain.KeyMetric{},
		Anomalies:  []domain.BriefingAnomaly{},
	}
}

func storedBriefing(id string, expiresAt time.Time) *domain.Briefing {
	return &domain.Briefing{
		ID:           id,
		BriefingDate: today,
		Language:     domain.LanguageEnglish,
		Content:      content("stored"),
		GeneratedAt:  expiresAt.Add(-briefingTTL),
		ExpiresAt:    expiresAt,
	}
}

func newTestCache(repo repository.BriefingRepository) *Cache {
	c := NewCache(repo)
	c.now = func() time.Time { return now }
	return c
}

func TestCache_GetOrGenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		setup        func(repo *mocks.MockBriefingRepository)
		generatorErr error
		wantErr      bool
		wantCached   bool
		wantID       string
		wantSummary  string
		wantGenerate bool
	}{
		{
			name: "Briefing válido é devolvido do cache",
			setup: func(repo *mocks.MockBriefingRepository) {
				repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).
					Return(storedBriefing("brf_stored", now.Add(time.Hour)), nil)
			},
			wantCached:  true,
			wantID:      "brf_stored",
			wantSummary: "stored",
		},
		{
			name: "Ausente gera e insere",
			setup: func(repo *mocks.MockBriefingRepository) {
				repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).Return(nil, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.Briefing) error {
					assert.Equal(t, now, b.GeneratedAt)
					assert.Equal(t, now.Add(24*time.Hour), b.ExpiresAt)
					assert.Equal(t, today, b.BriefingDate)
					return nil
				})
			},
			wantSummary:  "fresh",
			wantGenerate: true,
		},
		{
			name: "Expirado é substituído",
			setup: func(repo *mocks.MockBriefingRepository) {
				repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).
					Return(storedBriefing("brf_old", now), nil)
				repo.EXPECT().ReplaceExpired(gomock.Any(), gomock.Any(), now).Return(nil)
			},
			wantSummary:  "fresh",
			wantGenerate: true,
		},
		{
			name: "Conflito na inserção vira acerto de cache",
			setup: func(repo *mocks.MockBriefingRepository) {
				gomock.InOrder(
					repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).Return(nil, nil),
					repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repository.ErrBriefingExists),
					repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).
						Return(storedBriefing("brf_winner", now.Add(24*time.Hour)), nil),
				)
			},
			wantCached:   true,
			wantID:       "brf_winner",
			wantSummary:  "stored",
			wantGenerate: true,
		},
		{
			name: "Falha ao gravar ainda devolve o briefing gerado",
			setup: func(repo *mocks.MockBriefingRepository) {
				repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).Return(nil, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantSummary:  "fresh",
			wantGenerate: true,
		},
		{
			name: "Falha de leitura gera novamente",
			setup: func(repo *mocks.MockBriefingRepository) {
				repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).Return(nil, errors.New("connection reset"))
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantSummary:  "fresh",
			wantGenerate: true,
		},
		{
			name: "Erro do gerador é propagado sem gravar",
			setup: func(repo *mocks.MockBriefingRepository) {
				repo.EXPECT().GetByDateAndLanguage(gomock.Any(), today, domain.LanguageEnglish).Return(nil, nil)
			},
			generatorErr: errors.New("data source down"),
			wantErr:      true,
			wantGenerate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockBriefingRepository(ctrl)
			tt.setup(repo)

			generated := false
			generator := func(context.Context) (domain.BriefingContent, error) {
				generated = true
				if tt.generatorErr != nil {
					return domain.BriefingContent{}, tt.generatorErr
				}
				return content("fresh"), nil
			}

			got, cached, err := newTestCache(repo).GetOrGenerate(context.Background(), today, domain.LanguageEnglish, generator)

			assert.Equal(t, tt.wantGenerate, generated)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.generatorErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCached, cached)
			assert.Equal(t, tt.wantSummary, got.Content.Summary)
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, got.ID)
			} else {
				assert.Regexp(t, `^brf_[A-Za-z0-9]{12}$`, got.ID)
			}
		})
	}
}

// memoryBriefings simula a constraint única (data, idioma) do banco
type memoryBriefings struct {
	mu      sync.Mutex
	rows    map[string]*domain.Briefing
	reads   atomic.Int32
	inserts atomic.Int32
}

func newMemoryBriefings() *memoryBriefings {
	return &memoryBriefings{rows: map[string]*domain.Briefing{}}
}

func (m *memoryBriefings) GetByDateAndLanguage(_ context.Context, date string, language domain.Language) (*domain.Briefing, error) {
	m.reads.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[date+"|"+string(language)], nil
}

func (m *memoryBriefings) Insert(_ context.Context, b *domain.Briefing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := b.BriefingDate + "|" + string(b.Language)
	if _, ok := m.rows[key]; ok {
		return repository.ErrBriefingExists
	}
	m.inserts.Add(1)
	m.rows[key] = b
	return nil
}

func (m *memoryBriefings) ReplaceExpired(context.Context, *domain.Briefing, time.Time) error {
	return repository.ErrBriefingExists
}

func (m *memoryBriefings) DeleteOlderThan(context.Context, string) (int64, error) {
	return 0, nil
}

func TestCache_ConcurrentMissesGenerateOnce(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	const callers = 10

	repo := newMemoryBriefings()
	cache := newTestCache(repo)

	var generations atomic.Int32
	generator := func(context.Context) (domain.BriefingContent, error) {
		generations.Add(1)
		// Segura a geração até todos terem consultado o cache
		for repo.reads.Load() < callers {
			time.Sleep(time.Millisecond)
		}
		time.Sleep(20 * time.Millisecond)
		return content("fresh"), nil
	}

	var wg sync.WaitGroup
	ids := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, _, err := cache.GetOrGenerate(context.Background(), today, domain.LanguageGeorgian, generator)
			errs[i] = err
			if b != nil {
				ids[i] = b.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
	assert.EqualValues(t, 1, generations.Load())
	assert.EqualValues(t, 1, repo.inserts.Load())
}

func TestCache_SecondCallIsCached(t *testing.T) {
	repo := newMemoryBriefings()
	cache := newTestCache(repo)

	generator := func(context.Context) (domain.BriefingContent, error) {
		return content("fresh"), nil
	}

	first, cached, err := cache.GetOrGenerate(context.Background(), today, domain.LanguageEnglish, generator)
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := cache.GetOrGenerate(context.Background(), today, domain.LanguageEnglish, generator)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first, second)

	other, cached, err := cache.GetOrGenerate(context.Background(), today, domain.LanguageGeorgian, generator)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.NotEqual(t, first.ID, other.ID)
}
