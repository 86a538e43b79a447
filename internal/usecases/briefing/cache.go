package briefing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/finance-copilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
	"github.com/vfg2006/finance-copilot-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

const briefingTTL = 24 * time.Hour

// Generator produz o conteúdo de um briefing novo
type Generator func(ctx context.Context) (domain.BriefingContent, error)

// Cache guarda um briefing por (data, idioma). Gerações concorrentes da mesma
// chave neste processo são colapsadas em uma só; entre processos, a constraint
// única do banco decide quem grava e o perdedor relê a linha gravada.
type Cache struct {
	repo  repository.BriefingRepository
	group singleflight.Group
	ttl   time.Duration
	now   func() time.Time
}

type cacheResult struct {
	briefing *domain.Briefing
	cached   bool
}

func NewCache(repo repository.BriefingRepository) *Cache {
	return &Cache{
		repo: repo,
		ttl:  briefingTTL,
		now:  time.Now,
	}
}

// GetOrGenerate devolve o briefing válido armazenado (cached=true) ou gera,
// grava e devolve um novo (cached=false). Só erros do gerador são propagados.
func (c *Cache) GetOrGenerate(ctx context.Context, date string, lang domain.Language, generate Generator) (*domain.Briefing, bool, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{"briefing_date": date, "language": lang})

	stored, err := c.repo.GetByDateAndLanguage(ctx, date, lang)
	if err != nil {
		logger.WithError(err).Warn("briefing: falha ao ler cache, gerando novamente")
		stored = nil
	}

	if stored != nil && stored.IsValidAt(c.now()) {
		logger.Debug("briefing: cache válido")
		return stored, true, nil
	}

	expired := stored != nil
	key := date + "|" + string(lang)

	// O contexto do primeiro chamador não deve cancelar a geração dos demais
	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.generateAndStore(context.WithoutCancel(ctx), date, lang, generate, expired)
	})
	if err != nil {
		return nil, false, err
	}

	result := v.(*cacheResult)
	return result.briefing, result.cached, nil
}

func (c *Cache) generateAndStore(ctx context.Context, date string, lang domain.Language, generate Generator, expired bool) (*cacheResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{"briefing_date": date, "language": lang})

	content, err := generate(ctx)
	if err != nil {
		return nil, err
	}

	id, err := utils.GeneratePrefixedID("brf")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do briefing")
	}

	now := c.now()
	fresh := &domain.Briefing{
		ID:           id,
		BriefingDate: date,
		Language:     lang,
		Content:      content,
		GeneratedAt:  now,
		ExpiresAt:    now.Add(c.ttl),
	}

	if expired {
		err = c.repo.ReplaceExpired(ctx, fresh, now)
	} else {
		err = c.repo.Insert(ctx, fresh)
	}

	switch {
	case err == nil:
		logger.Info("briefing: novo briefing gerado")
		return &cacheResult{briefing: fresh}, nil

	case errors.Is(err, repository.ErrBriefingExists):
		// Outra instância gravou primeiro: a linha dela vale como cache
		winner, getErr := c.repo.GetByDateAndLanguage(ctx, date, lang)
		if getErr == nil && winner != nil {
			logger.Info("briefing: conflito na gravação, usando briefing já armazenado")
			return &cacheResult{briefing: winner, cached: true}, nil
		}
		if getErr != nil {
			logger = logger.WithError(getErr)
		}
		logger.Warn("briefing: conflito na gravação sem linha armazenada")
		return &cacheResult{briefing: fresh}, nil

	default:
		logger.WithError(err).Warn("briefing: falha ao gravar cache, devolvendo briefing gerado")
		return &cacheResult{briefing: fresh}, nil
	}
}
