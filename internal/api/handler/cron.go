package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-copilot-api/internal/scheduler"
	"github.com/vfg2006/finance-copilot-api/pkg/apiErrors"
)

// MaintenanceRunner é a parte do agendador exposta pela API
type MaintenanceRunner interface {
	TriggerManualSync(job string) error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	Maintenance MaintenanceRunner
}

// RunCronJob executa manualmente um job de manutenção
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if services.Maintenance == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de manutenção não disponível", nil)
			return
		}

		err := services.Maintenance.TriggerManualSync(cronType)
		switch {
		case errors.Is(err, scheduler.ErrUnknownJob):
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob,
				"Tipo de cron job inválido. Valores aceitos: expire-recommendations, prune-briefings, generate-recommendations, all", cronType)
			return
		case errors.Is(err, scheduler.ErrJobRunning):
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Manutenção já em execução", nil)
			return
		case err != nil:
			logrus.WithError(err).Error("Erro ao iniciar cron job")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.Maintenance != nil {
			status["maintenance"] = services.Maintenance.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
