package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/scheduling"
	"github.com/dfcastro/commission-tracker-api/pkg/apiErrors"
	"github.com/dfcastro/commission-tracker-api/pkg/middleware"
	"github.com/dfcastro/commission-tracker-api/pkg/utils"
)

// CreateScheduleRequest carrega os dados de criação de um agendamento.
// As datas chegam como "YYYY-MM-DD".
type CreateScheduleRequest struct {
	OwnerID            int     `json:"owner_id"`
	TargetPhone        string  `json:"target_phone"`
	MessageTemplate    string  `json:"message_template"`
	RecurrenceType     string  `json:"recurrence_type"`
	RecurrenceInterval int     `json:"recurrence_interval"`
	DayOfWeek          *int    `json:"day_of_week"`
	DayOfMonth         *int    `json:"day_of_month"`
	ExecutionTime      string  `json:"execution_time"`
	StartDate          string  `json:"start_date"`
	EndDate            *string `json:"end_date"`
	MaxExecutions      *int    `json:"max_executions"`
}

// CreateSchedule registra um novo agendamento de mensagem recorrente
func CreateSchedule(service scheduling.ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSchedule")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Vendedor agenda em nome próprio; admin e supervisor escolhem o dono
		if req.OwnerID == 0 {
			req.OwnerID = userClaims.UserID
		}
		if userClaims.UserRoleID == domain.RoleSeller && req.OwnerID != userClaims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Vendedor não pode criar agendamentos para outro usuário", nil)
			return
		}

		if req.StartDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data de início não fornecida", nil)
			return
		}

		startDate, err := utils.ParseDate(req.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		schedule := &domain.RecurringSchedule{
			OwnerID:            req.OwnerID,
			TargetPhone:        req.TargetPhone,
			MessageTemplate:    req.MessageTemplate,
			RecurrenceType:     domain.RecurrenceType(req.RecurrenceType),
			RecurrenceInterval: req.RecurrenceInterval,
			DayOfWeek:          req.DayOfWeek,
			DayOfMonth:         req.DayOfMonth,
			ExecutionTime:      req.ExecutionTime,
			StartDate:          *startDate,
			MaxExecutions:      req.MaxExecutions,
		}

		if req.EndDate != nil && *req.EndDate != "" {
			endDate, err := utils.ParseDate(*req.EndDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			schedule.EndDate = endDate
		}

		created, err := service.CreateSchedule(schedule)
		if err != nil {
			logrus.Error(err)
			handleScheduleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(created)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetSchedule retorna um agendamento pelo ID
func GetSchedule(service scheduling.ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		schedule, err := service.GetScheduleByID(scheduleID)
		if err != nil {
			logrus.Error(err)
			handleScheduleError(w, err)
			return
		}

		if userClaims.UserRoleID == domain.RoleSeller && schedule.OwnerID != userClaims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Vendedor só pode consultar os próprios agendamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(schedule)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListSchedules lista os agendamentos visíveis para o usuário logado
func ListSchedules(service scheduling.ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		schedules, err := service.ListSchedules(userClaims)
		if err != nil {
			logrus.Error(err)
			handleScheduleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(schedules)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateSchedule atualiza um agendamento existente
func UpdateSchedule(service scheduling.ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSchedule")

		scheduleID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var updateReq domain.UpdateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = scheduleID

		if err := service.UpdateSchedule(&updateReq, userClaims); err != nil {
			logrus.Error(err)
			handleScheduleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteSchedule remove um agendamento
func DeleteSchedule(service scheduling.ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSchedule")

		scheduleID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.DeleteSchedule(scheduleID, userClaims); err != nil {
			logrus.Error(err)
			handleScheduleError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListScheduleMessages lista o histórico de mensagens geradas por um agendamento
func ListScheduleMessages(service scheduling.ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		// A checagem de dono vale também para o histórico
		schedule, err := service.GetScheduleByID(scheduleID)
		if err != nil {
			logrus.Error(err)
			handleScheduleError(w, err)
			return
		}

		if userClaims.UserRoleID == domain.RoleSeller && schedule.OwnerID != userClaims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Vendedor só pode consultar os próprios agendamentos", nil)
			return
		}

		messages, err := service.ListScheduleMessages(scheduleID)
		if err != nil {
			logrus.Error(err)
			handleScheduleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(messages)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleScheduleError converte erros do serviço de agendamentos em respostas HTTP
func handleScheduleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scheduling.ErrScheduleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Agendamento não encontrado", nil)

	case errors.Is(err, scheduling.ErrOwnerNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

	case errors.Is(err, scheduling.ErrMissingScheduleData),
		errors.Is(err, scheduling.ErrMissingRecurrenceData),
		errors.Is(err, scheduling.ErrMissingScheduleID):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, scheduling.ErrInvalidRecurrence),
		errors.Is(err, scheduling.ErrInvalidInterval),
		errors.Is(err, scheduling.ErrInvalidDayOfWeek),
		errors.Is(err, scheduling.ErrInvalidDayOfMonth),
		errors.Is(err, scheduling.ErrInvalidExecutionTime),
		errors.Is(err, scheduling.ErrInvalidDateRange),
		errors.Is(err, scheduling.ErrInvalidMaxExecutions):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSchedule, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar agendamento", nil)
	}
}
