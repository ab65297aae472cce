package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/reporting"
	"github.com/dfcastro/commission-tracker-api/pkg/apiErrors"
	"github.com/dfcastro/commission-tracker-api/pkg/middleware"
)

// GetSellerReport retorna o relatório de comissão de um vendedor.
// Vendedores só consultam o próprio relatório.
func GetSellerReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if userClaims.UserRoleID == domain.RoleSeller && userClaims.UserID != sellerID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Vendedor só pode consultar o próprio relatório", nil)
			return
		}

		month, year, ok := periodParams(w, r)
		if !ok {
			return
		}

		report, err := service.GetSellerReport(sellerID, month, year)
		if err != nil {
			logrus.Error(err)
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetTeamReport retorna o relatório consolidado do time para o período
func GetTeamReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, ok := periodParams(w, r)
		if !ok {
			return
		}

		report, err := service.GetTeamReport(month, year)
		if err != nil {
			logrus.Error(err)
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetMonthlySnapshot retorna o fechamento mensal persistido de um vendedor
func GetMonthlySnapshot(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if userClaims.UserRoleID == domain.RoleSeller && userClaims.UserID != sellerID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Vendedor só pode consultar o próprio fechamento", nil)
			return
		}

		month, year, ok := periodParams(w, r)
		if !ok {
			return
		}

		snapshot, err := service.GetMonthlySnapshot(sellerID, month, year)
		if err != nil {
			logrus.Error(err)
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(snapshot)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListMonthlySnapshots lista os fechamentos mensais de todos os vendedores
func ListMonthlySnapshots(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year, ok := periodParams(w, r)
		if !ok {
			return
		}

		snapshots, err := service.ListMonthlySnapshots(month, year)
		if err != nil {
			logrus.Error(err)
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(snapshots)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleReportError converte erros do serviço de relatórios em respostas HTTP
func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Vendedor não encontrado", nil)

	case errors.Is(err, reporting.ErrSnapshotNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório", nil)
	}
}

// periodParams extrai mês e ano da query string.
// Quando ausentes, assume o mês corrente.
func periodParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	query := r.URL.Query()

	if monthStr := query.Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "month inválido", nil)
			return 0, 0, false
		}
		month = parsed
	}

	if yearStr := query.Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "year inválido", nil)
			return 0, 0, false
		}
		year = parsed
	}

	return month, year, true
}
