package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/finance-copilot-api/internal/domain"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/briefing"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/finance-copilot-api/internal/usecases/recommending"
	"github.com/vfg2006/finance-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/finance-copilot-api/pkg/log"
	"github.com/vfg2006/finance-copilot-api/pkg/middleware"
)

// CopilotDefaults são os valores usados quando a requisição não informa o parâmetro
type CopilotDefaults struct {
	Language         domain.Language
	LookbackMonths   int
	ThresholdPercent int
}

// GetDailyBriefing retorna o briefing do dia no idioma da requisição
func GetDailyBriefing(service briefing.BriefingService, defaults CopilotDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.LanguageFromContext(r.Context(), defaults.Language)

		view, err := service.GetDailyBriefing(r.Context(), lang)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// GetAnomalies roda a detecção com a janela e o limiar pedidos
func GetAnomalies(service detecting.AnomalyService, defaults CopilotDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		lookback, ok := intParam(w, query.Get("lookback_months"), defaults.LookbackMonths, "lookback_months")
		if !ok {
			return
		}

		threshold, ok := intParam(w, query.Get("threshold"), defaults.ThresholdPercent, "threshold")
		if !ok {
			return
		}

		lang := middleware.LanguageFromContext(r.Context(), defaults.Language)

		resp, err := service.GetAnomalies(r.Context(), lookback, threshold, lang)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// AcknowledgeAnomaly marca a anomalia como reconhecida
func AcknowledgeAnomaly(service detecting.AnomalyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.AcknowledgeAnomaly(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// GetRecommendations lista as recomendações ativas
func GetRecommendations(service recommending.RecommendationService, defaults CopilotDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := intParam(w, r.URL.Query().Get("limit"), recommending.DefaultLimit, "limit")
		if !ok {
			return
		}

		lang := middleware.LanguageFromContext(r.Context(), defaults.Language)

		resp, err := service.List(r.Context(), limit, lang)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// CreateTaskFromRecommendation converte a recomendação em tarefa
func CreateTaskFromRecommendation(service recommending.RecommendationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.ConvertToTask(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

// DismissRecommendation descarta a recomendação. Repetir o descarte de um id
// inexistente também responde sucesso.
func DismissRecommendation(service recommending.RecommendationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Dismiss(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		log.ForContext(r.Context()).WithField("recommendation", id).Debug("recommendations: descarte confirmado")
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// intParam lê um inteiro da query; vazio usa o padrão. Em caso de erro a
// resposta já foi escrita e ok é false.
func intParam(w http.ResponseWriter, raw string, fallback int, name string) (int, bool) {
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, name+" deve ser um número inteiro", raw)
		return 0, false
	}

	return value, true
}
