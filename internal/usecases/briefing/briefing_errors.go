package briefing

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrGenerateBriefing = errors.New("error generating daily briefing")
	ErrInvalidNarrative = errors.New("invalid narrative response")
)

// BriefingError é um erro com o código da API associado
type BriefingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *BriefingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BriefingError) Unwrap() error {
	return e.Err
}

func NewBriefingError(err error, code string, details string) *BriefingError {
	return &BriefingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
