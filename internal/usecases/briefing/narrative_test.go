package briefing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
)

func TestParseNarrative(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantGreeting string
		wantSummary  string
		wantErr      bool
	}{
		{
			name:         "Objeto simples",
			input:        `{"greeting":"Hi","summary":"All good."}`,
			wantGreeting: "Hi",
			wantSummary:  "All good.",
		},
		{
			name:         "Bloco de código com rótulo",
			input:        "```json\n{\"greeting\":\" Hi \",\"summary\":\"All good.\"}\n```",
			wantGreeting: "Hi",
			wantSummary:  "All good.",
		},
		{
			name:         "Bloco de código sem rótulo",
			input:        "```\n{\"greeting\":\"Hi\",\"summary\":\"All good.\"}\n```",
			wantGreeting: "Hi",
			wantSummary:  "All good.",
		},
		{name: "Vazio", input: "  ", wantErr: true},
		{name: "Texto livre", input: "Good morning! Revenue is up.", wantErr: true},
		{name: "Campo desconhecido", input: `{"greeting":"Hi","summary":"Ok","extra":1}`, wantErr: true},
		{name: "Summary vazio", input: `{"greeting":"Hi","summary":"  "}`, wantErr: true},
		{name: "Greeting ausente", input: `{"summary":"Ok"}`, wantErr: true},
		{name: "Conteúdo depois do objeto", input: `{"greeting":"Hi","summary":"Ok"} trailing`, wantErr: true},
		{name: "Lista em vez de objeto", input: `[{"greeting":"Hi","summary":"Ok"}]`, wantErr: true},
		{name: "Texto antes do objeto no bloco", input: "```\nHere it is: {\"greeting\":\"Hi\",\"summary\":\"Ok\"}\n```", wantErr: true},
		{
			name:    "Summary longo demais",
			input:   `{"greeting":"Hi","summary":"` + strings.Repeat("a", maxSummaryLength+1) + `"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			greeting, summary, err := parseNarrative(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNarrative)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantGreeting, greeting)
			assert.Equal(t, tt.wantSummary, summary)
		})
	}
}

func TestTrendOf(t *testing.T) {
	assert.Equal(t, domain.TrendStable, trendOf(0))
	assert.Equal(t, domain.TrendStable, trendOf(0.5))
	assert.Equal(t, domain.TrendStable, trendOf(-0.99))
	assert.Equal(t, domain.TrendUp, trendOf(1))
	assert.Equal(t, domain.TrendDown, trendOf(-4))
}
