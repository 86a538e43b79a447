package briefing

import (
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const maxSummaryLength = 2000

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// strictJSON recusa campos desconhecidos e conteúdo depois do objeto
var strictJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

type narrativeResponse struct {
	Greeting string `json:"greeting"`
	Summary  string `json:"summary"`
}

// parseNarrative valida a resposta do modelo: um único objeto JSON com
// greeting e summary preenchidos. Um bloco de código markdown em volta é aceito.
func parseNarrative(text string) (string, string, error) {
	raw := trimCodeFence(text)
	if raw == "" {
		return "", "", errors.Wrap(ErrInvalidNarrative, "resposta vazia")
	}

	var resp narrativeResponse
	if err := strictJSON.UnmarshalFromString(raw, &resp); err != nil {
		return "", "", errors.Wrapf(ErrInvalidNarrative, "json inválido: %v", err)
	}

	greeting := strings.TrimSpace(resp.Greeting)
	summary := strings.TrimSpace(resp.Summary)
	if greeting == "" || summary == "" {
		return "", "", errors.Wrap(ErrInvalidNarrative, "greeting e summary são obrigatórios")
	}

	if utf8.RuneCountInString(summary) > maxSummaryLength {
		return "", "", errors.Wrapf(ErrInvalidNarrative, "summary excede %d caracteres", maxSummaryLength)
	}

	return greeting, summary, nil
}

func trimCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	// Descarta o rótulo de linguagem (```json)
	if i := strings.IndexByte(s, '{'); i > 0 {
		if tag := strings.TrimSpace(s[:i]); !strings.ContainsAny(tag, " \t\n") {
			s = s[i:]
		}
	}

	return s
}
