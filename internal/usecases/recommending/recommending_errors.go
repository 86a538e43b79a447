package recommending

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erros específicos do contexto de recomendações
var (
	// Erros de ciclo de vida
	ErrNotFound     = errors.New("recommendation not found")
	ErrInvalidState = errors.New("recommendation already processed")

	// Erros de validação
	ErrIDMissing    = errors.New("recommendation ID is required")
	ErrTitleMissing = errors.New("recommendation title is required")
	ErrInvalidLimit = errors.New("invalid recommendations limit")

	// Erros de banco de dados
	ErrListRecommendations = errors.New("error listing recommendations")
	ErrConvertFailed       = errors.New("error converting recommendation to task")
	ErrDismissFailed       = errors.New("error dismissing recommendation")
	ErrCreateFailed        = errors.New("error creating recommendation")
	ErrExpireFailed        = errors.New("error expiring recommendations")
)

// RecommendationError é um erro com o código da API associado
type RecommendationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *RecommendationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RecommendationError) Unwrap() error {
	return e.Err
}

func NewRecommendationError(err error, code string, details string) *RecommendationError {
	return &RecommendationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
