package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/selling"
	"github.com/dfcastro/commission-tracker-api/pkg/apiErrors"
	"github.com/dfcastro/commission-tracker-api/pkg/middleware"
	"github.com/dfcastro/commission-tracker-api/pkg/utils"
)

// CreateSaleRequest carrega os dados de criação de venda.
// As datas chegam como "YYYY-MM-DD".
type CreateSaleRequest struct {
	SellerID    int     `json:"seller_id"`
	ClientName  string  `json:"client_name"`
	ClientPhone *string `json:"client_phone"`
	GrossAmount float64 `json:"gross_amount"`
	SaleDate    string  `json:"sale_date"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

// CreateSale registra uma nova venda
func CreateSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSale")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Vendedor registra no próprio nome; admin e supervisor escolhem o vendedor
		if req.SellerID == 0 {
			req.SellerID = userClaims.UserID
		}
		if userClaims.UserRoleID == domain.RoleSeller && req.SellerID != userClaims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Vendedor não pode registrar vendas para outro vendedor", nil)
			return
		}

		if req.SaleDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data da venda não fornecida", nil)
			return
		}

		saleDate, err := utils.ParseDate(req.SaleDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		sale := &domain.Sale{
			SellerID:    req.SellerID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			GrossAmount: req.GrossAmount,
			SaleDate:    *saleDate,
			Notes:       req.Notes,
		}
		if req.Status != nil {
			sale.Status = domain.SaleStatus(*req.Status)
		}

		created, err := service.CreateSale(sale)
		if err != nil {
			logrus.Error(err)
			handleSaleError(w, err)
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

// GetSale retorna uma venda pelo ID
func GetSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saleID, ok := pathID(w, r)
		if !ok {
			return
		}

		sale, err := service.GetSaleByID(saleID)
		if err != nil {
			logrus.Error(err)
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(sale)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListSales lista vendas com filtros opcionais de vendedor, período e status
func ListSales(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters := &domain.SaleFilters{}

		query := r.URL.Query()

		if sellerIDStr := query.Get("seller_id"); sellerIDStr != "" {
			sellerID, err := strconv.Atoi(sellerIDStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "seller_id inválido", nil)
				return
			}
			filters.SellerID = &sellerID
		}

		// Vendedor só enxerga as próprias vendas
		if userClaims.UserRoleID == domain.RoleSeller {
			filters.SellerID = &userClaims.UserID
		}

		if startDateStr := query.Get("start_date"); startDateStr != "" {
			startDate, err := utils.ParseDate(startDateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.StartDate = startDate
		}

		if endDateStr := query.Get("end_date"); endDateStr != "" {
			endDate, err := utils.ParseDate(endDateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.EndDate = endDate
		}

		if statusStr := query.Get("status"); statusStr != "" {
			status := domain.SaleStatus(statusStr)
			filters.Status = &status
		}

		sales, err := service.ListSales(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(sales)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateSale atualiza uma venda existente
func UpdateSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSale")

		saleID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var updateReq domain.UpdateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = saleID

		if err := service.UpdateSale(&updateReq, userClaims); err != nil {
			logrus.Error(err)
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteSale remove uma venda
func DeleteSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSale")

		saleID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.DeleteSale(saleID, userClaims); err != nil {
			logrus.Error(err)
			handleSaleError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleSaleError converte erros do serviço de vendas em respostas HTTP
func handleSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, selling.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Venda não encontrada", nil)

	case errors.Is(err, selling.ErrSellerNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

	case errors.Is(err, selling.ErrMissingSaleData),
		errors.Is(err, selling.ErrMissingSaleID):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, selling.ErrInvalidAmount),
		errors.Is(err, selling.ErrInvalidStatus),
		errors.Is(err, selling.ErrInvalidSaleDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar venda", nil)
	}
}

// pathID extrai e valida o parâmetro :id da URL
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
		return 0, false
	}

	return id, true
}
