package narrativedomain

import (
	"errors"
	"fmt"
)

var (
	// ErrExternalService identifica qualquer falha do serviço de narrativa
	ErrExternalService = errors.New("falha no serviço de narrativa")
	// ErrNarrativeUnavailable é retornado quando nenhum provedor está configurado
	ErrNarrativeUnavailable = errors.New("serviço de narrativa não configurado")
)

// ExternalServiceError carrega o provedor e a causa da falha
type ExternalServiceError struct {
	Provider string
	Err      error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrExternalService.Error(), e.Provider, e.Err)
}

func (e *ExternalServiceError) Unwrap() []error {
	return []error{ErrExternalService, e.Err}
}

// ErrorResponse é o formato de erro devolvido pela API compatível com OpenAI
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code,omitempty"`
}
