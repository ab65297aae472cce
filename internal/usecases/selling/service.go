package selling

import (
	"errors"
	"fmt"
	"time"

	"github.com/dfcastro/commission-tracker-api/infrastructure/repository"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	ErrSaleNotFound     = errors.New("venda não encontrada")
	ErrInvalidAmount    = errors.New("valor bruto deve ser maior que zero")
	ErrInvalidStatus    = errors.New("status de venda inválido")
	ErrMissingSaleData  = errors.New("vendedor, cliente e data da venda são obrigatórios")
	ErrInvalidSaleDate  = errors.New("data da venda inválida, use o formato YYYY-MM-DD")
	ErrSellerNotAllowed = errors.New("vendedor não pode alterar vendas de outro vendedor")
	ErrMissingSaleID    = errors.New("ID da venda é obrigatório")
)

type Seller interface {
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	UpdateSale(req *domain.UpdateSaleRequest, requester *domain.Claims) error
	DeleteSale(saleID int, requester *domain.Claims) error
	GetSaleByID(saleID int) (*domain.Sale, error)
	ListSales(filters *domain.SaleFilters) ([]*domain.Sale, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
}

func NewService(saleRepo repository.SaleRepository, userRepo repository.UserRepository) Seller {
	return &Service{
		saleRepo: saleRepo,
		userRepo: userRepo,
	}
}

func (s *Service) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	if sale.SellerID == 0 || sale.ClientName == "" || sale.SaleDate.IsZero() {
		return nil, ErrMissingSaleData
	}

	if sale.GrossAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	seller, err := s.userRepo.GetUserByID(sale.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil || seller.Deleted {
		return nil, fmt.Errorf("vendedor não encontrado para o ID: %d", sale.SellerID)
	}

	if sale.Status == "" {
		sale.Status = domain.SaleStatusPending
	}

	if !validStatus(sale.Status) {
		return nil, ErrInvalidStatus
	}

	created, err := s.saleRepo.CreateSale(sale)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":   created.ID,
		"seller_id": created.SellerID,
	}).Info("Venda registrada")

	return created, nil
}

func (s *Service) UpdateSale(req *domain.UpdateSaleRequest, requester *domain.Claims) error {
	if req.ID == 0 {
		return ErrMissingSaleID
	}

	sale, err := s.saleRepo.GetSaleByID(req.ID)
	if err != nil {
		return err
	}
	if sale == nil {
		return ErrSaleNotFound
	}

	// Vendedor só altera as próprias vendas; admin e supervisor alteram qualquer uma
	if requester != nil && requester.UserRoleID == domain.RoleSeller && sale.SellerID != requester.UserID {
		return ErrSellerNotAllowed
	}

	if req.ClientName != nil {
		sale.ClientName = *req.ClientName
	}

	if req.ClientPhone != nil {
		sale.ClientPhone = req.ClientPhone
	}

	if req.GrossAmount != nil {
		if *req.GrossAmount <= 0 {
			return ErrInvalidAmount
		}
		sale.GrossAmount = *req.GrossAmount
	}

	if req.SaleDate != nil {
		saleDate, err := time.Parse("2006-01-02", *req.SaleDate)
		if err != nil {
			return ErrInvalidSaleDate
		}
		sale.SaleDate = saleDate
	}

	if req.Status != nil {
		status := domain.SaleStatus(*req.Status)
		if !validStatus(status) {
			return ErrInvalidStatus
		}
		sale.Status = status
	}

	if req.Notes != nil {
		sale.Notes = req.Notes
	}

	return s.saleRepo.UpdateSale(sale)
}

func (s *Service) DeleteSale(saleID int, requester *domain.Claims) error {
	sale, err := s.saleRepo.GetSaleByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return ErrSaleNotFound
	}

	if requester != nil && requester.UserRoleID == domain.RoleSeller && sale.SellerID != requester.UserID {
		return ErrSellerNotAllowed
	}

	return s.saleRepo.DeleteSale(saleID)
}

func (s *Service) GetSaleByID(saleID int) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetSaleByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	return sale, nil
}

func (s *Service) ListSales(filters *domain.SaleFilters) ([]*domain.Sale, error) {
	return s.saleRepo.ListSales(filters)
}

func validStatus(status domain.SaleStatus) bool {
	switch status {
	case domain.SaleStatusPending, domain.SaleStatusConfirmed, domain.SaleStatusCanceled:
		return true
	}
	return false
}
