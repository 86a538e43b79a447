package narrative

//go:generate mockgen -source=service.go -destination=mocks/narrator.go -package=mocks
//go:generate mockgen -source=narrativeclient/client.go -destination=mocks/client.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	narrativedomain "github.com/vfg2006/finance-copilot-api/infrastructure/integrator/narrative/domain"
	"github.com/vfg2006/finance-copilot-api/infrastructure/integrator/narrative/narrativeclient"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
)

const defaultTimeout = 8 * time.Second

// Narrator produz o texto do briefing. Toda falha é devolvida como
// *narrativedomain.ExternalServiceError.
type Narrator interface {
	Complete(ctx context.Context, systemInstruction, contextJSON string) (string, error)
	Provider() string
}

type NarrativeService struct {
	provider string
	timeout  time.Duration
	Client   narrativeclient.Client
}

// New escolhe o provedor configurado em NARRATIVE_PROVIDER
func New(ctx context.Context, cfg config.Narrative) (Narrator, error) {
	var (
		client narrativeclient.Client
		err    error
	)

	switch cfg.Provider {
	case config.ProviderOpenAI:
		client, err = narrativeclient.NewOpenAIClient(cfg)
	case config.ProviderGemini:
		client, err = narrativeclient.NewGeminiClient(ctx, cfg)
	case config.ProviderNone, "":
		return Disabled(), nil
	default:
		return nil, fmt.Errorf("provedor de narrativa desconhecido: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return NewService(cfg.Provider, client, cfg.Timeout), nil
}

func NewService(provider string, client narrativeclient.Client, timeout time.Duration) *NarrativeService {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &NarrativeService{
		provider: provider,
		timeout:  timeout,
		Client:   client,
	}
}

func (s *NarrativeService) Complete(ctx context.Context, systemInstruction, contextJSON string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	text, err := s.Client.Complete(ctx, systemInstruction, contextJSON)
	if err != nil {
		return "", &narrativedomain.ExternalServiceError{Provider: s.provider, Err: err}
	}

	log.ForContext(ctx).Debugf("narrativa: %s respondeu em %s", s.provider, time.Since(started).Round(time.Millisecond))
	return text, nil
}

func (s *NarrativeService) Provider() string {
	return s.provider
}

type disabledNarrator struct{}

// Disabled devolve um Narrator que sempre falha com ErrNarrativeUnavailable
func Disabled() Narrator {
	return disabledNarrator{}
}

func (disabledNarrator) Complete(context.Context, string, string) (string, error) {
	return "", &narrativedomain.ExternalServiceError{
		Provider: config.ProviderNone,
		Err:      narrativedomain.ErrNarrativeUnavailable,
	}
}

func (disabledNarrator) Provider() string {
	return config.ProviderNone
}
