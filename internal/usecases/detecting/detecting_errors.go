package detecting

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erros específicos do contexto de anomalias
var (
	// Erros de dados
	ErrInsufficientData = errors.New("insufficient data for trailing average")

	// Erros de validação
	ErrInvalidLookback  = errors.New("invalid lookback months")
	ErrInvalidThreshold = errors.New("invalid threshold percent")
	ErrAnomalyIDMissing = errors.New("anomaly ID is required")
	ErrAnomalyNotFound  = errors.New("anomaly not found")

	// Erros de banco de dados
	ErrFetchMetrics      = errors.New("error fetching monthly metrics")
	ErrAcknowledgeFailed = errors.New("error acknowledging anomaly")
)

// InsufficientDataError indica que não há meses suficientes para a média móvel.
// É tratado localmente: a detecção é pulada e a lista de anomalias fica vazia.
type InsufficientDataError struct {
	Available int
	Required  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %d de %d períodos", ErrInsufficientData.Error(), e.Available, e.Required)
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

// AnomalyError é um erro com o código da API associado
type AnomalyError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AnomalyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnomalyError) Unwrap() error {
	return e.Err
}

func NewAnomalyError(err error, code string, details string) *AnomalyError {
	return &AnomalyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
