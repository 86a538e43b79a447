package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/briefing"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/recommending"
	"github.com/vfg2006/finance-copilot-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		briefingErr       *briefing.BriefingError
		anomalyErr        *detecting.AnomalyError
		recommendationErr *recommending.RecommendationError
	)

	switch {
	case errors.As(err, &recommendationErr):
		apiErrors.WriteError(w, recommendationErr.Code, recommendationErr.Err.Error(), detailsOf(recommendationErr.Details))
	case errors.As(err, &anomalyErr):
		apiErrors.WriteError(w, anomalyErr.Code, anomalyErr.Err.Error(), detailsOf(anomalyErr.Details))
	case errors.As(err, &briefingErr):
		apiErrors.WriteError(w, briefingErr.Code, briefingErr.Err.Error(), detailsOf(briefingErr.Details))
	default:
		logrus.WithError(err).Error("Erro não mapeado no handler")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func detailsOf(details string) any {
	if details == "" {
		return nil
	}
	return details
}
