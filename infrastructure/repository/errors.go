package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrBriefingExists          = errors.New("briefing já existe para a data e idioma")
	ErrRecommendationNotFound  = errors.New("recomendação não encontrada")
	ErrRecommendationNotActive = errors.New("recomendação não está ativa")
	ErrAnomalyNotFound         = errors.New("anomalia não encontrada")
)

// execError padroniza o erro de execução, expondo o código do Postgres quando houver
func execError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", err, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
