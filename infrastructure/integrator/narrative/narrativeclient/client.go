package narrativeclient

import "context"

// Client é um serviço de completar texto: recebe a instrução de sistema e
// o contexto (JSON) e devolve o texto produzido pelo modelo
type Client interface {
	Complete(ctx context.Context, systemInstruction, content string) (string, error)
}
