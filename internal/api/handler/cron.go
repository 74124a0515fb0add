package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReload = "reload"
	CronJobTypeAll    = "all"
)

// DataReloader é implementado pelo serviço de recarga agendada
type DataReloader interface {
	TriggerManualReload() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DataReloadService DataReloader
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReload, CronJobTypeAll:
			if services.DataReloadService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de recarga de dados não disponível", nil)
				return
			}

			if !services.DataReloadService.TriggerManualReload() {
				writeJSON(w, r, http.StatusConflict, map[string]any{
					"message": "Recarga de dados já em andamento",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: reload, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DataReloadService != nil {
			status[CronJobTypeReload] = services.DataReloadService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
