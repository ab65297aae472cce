package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/internal/scheduler"
	"github.com/dfcastro/commission-tracker-api/pkg/apiErrors"
	"github.com/dfcastro/commission-tracker-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRecurringDispatch = "recurring-dispatch"
	CronJobTypeMonthlyReports    = "monthly-reports"
	CronJobTypeAll               = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RecurringDispatchService *scheduler.RecurringDispatchService
	MonthlyReportSyncService *scheduler.MonthlyReportSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID == domain.RoleSeller {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores e supervisores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRecurringDispatch:
			if services.RecurringDispatchService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de disparo de mensagens recorrentes não disponível", nil)
				return
			}
			services.RecurringDispatchService.TriggerManualDispatch()

		case CronJobTypeMonthlyReports:
			if services.MonthlyReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fechamento mensal não disponível", nil)
				return
			}
			services.MonthlyReportSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.RecurringDispatchService != nil {
				services.RecurringDispatchService.TriggerManualDispatch()
			}
			if services.MonthlyReportSyncService != nil {
				services.MonthlyReportSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: recurring-dispatch, monthly-reports, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID == domain.RoleSeller {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores e supervisores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"recurring-dispatch": services.RecurringDispatchService.GetStatus(),
			"monthly-reports":    services.MonthlyReportSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
