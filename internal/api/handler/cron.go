package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/internal/scheduler"
	"github.com/autoloan/datasync/pkg/apiErrors"
)

// Cron job types that can be triggered manually.
const (
	CronJobTypeCurrency = "currency"
	CronJobTypeAdSpend  = "adspend"
	CronJobTypeAll      = "all"
)

// CronJobServices carries the sync services exposed through the admin API.
type CronJobServices struct {
	CurrencySyncService *scheduler.CurrencySyncService
	AdSpendSyncService  *scheduler.AdSpendSyncService
}

// RunCronJob triggers a pipeline run by hand.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeCurrency:
			if services.CurrencySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "currency sync service not available", nil)
				return
			}
			services.CurrencySyncService.TriggerManualSync()

		case CronJobTypeAdSpend:
			if services.AdSpendSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "ad-spend sync service not available", nil)
				return
			}
			services.AdSpendSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.CurrencySyncService != nil {
				services.CurrencySyncService.TriggerManualSync()
			}
			if services.AdSpendSyncService != nil {
				services.AdSpendSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type. Accepted values: currency, adspend, all", nil)
			return
		}

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the state of both schedulers.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.CurrencySyncService != nil {
			status["currency"] = services.CurrencySyncService.Status()
		}
		if services.AdSpendSyncService != nil {
			status["adspend"] = services.AdSpendSyncService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
