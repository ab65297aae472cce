package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/goaling"
	"github.com/dfcastro/commission-tracker-api/pkg/apiErrors"
)

// SetGoal cria ou atualiza a meta mensal de um vendedor
func SetGoal(service goaling.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetGoal")

		var goal *domain.MonthlyGoal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		saved, err := service.SetGoal(goal)
		if err != nil {
			logrus.Error(err)
			handleGoalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(saved)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetSellerGoal retorna a meta de um vendedor para o período informado
func GetSellerGoal(service goaling.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := pathID(w, r)
		if !ok {
			return
		}

		month, year, ok := periodParams(w, r)
		if !ok {
			return
		}

		goal, err := service.GetGoal(sellerID, month, year)
		if err != nil {
			logrus.Error(err)
			handleGoalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(goal)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListGoals lista as metas de todos os vendedores para o período informado
func ListGoals(service goaling.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, ok := periodParams(w, r)
		if !ok {
			return
		}

		goals, err := service.ListGoalsByPeriod(month, year)
		if err != nil {
			logrus.Error(err)
			handleGoalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(goals)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteGoal remove uma meta mensal
func DeleteGoal(service goaling.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteGoal")

		goalID, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteGoal(goalID); err != nil {
			logrus.Error(err)
			handleGoalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleGoalError converte erros do serviço de metas em respostas HTTP
func handleGoalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, goaling.ErrGoalNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Meta não encontrada", nil)

	case errors.Is(err, goaling.ErrInvalidPeriod),
		errors.Is(err, goaling.ErrInvalidGoalAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar meta", nil)
	}
}
