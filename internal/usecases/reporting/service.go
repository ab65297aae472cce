package reporting

import (
	"errors"
	"time"

	"github.com/dfcastro/commission-tracker-api/infrastructure/repository"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/commissioning"
	"github.com/dfcastro/commission-tracker-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrSellerNotFound   = errors.New("vendedor não encontrado")
	ErrInvalidPeriod    = errors.New("mês deve estar entre 1 e 12 e ano deve ser informado")
	ErrSnapshotNotFound = errors.New("fechamento não encontrado para o período")
)

type Reporter interface {
	GetSellerReport(sellerID, month, year int) (*domain.SellerReport, error)
	GetTeamReport(month, year int) (*domain.TeamReport, error)
	SyncMonthlyReports(month, year int) (int, error)
	GetMonthlySnapshot(sellerID, month, year int) (*domain.CommissionReportEntry, error)
	ListMonthlySnapshots(month, year int) ([]*domain.CommissionReportEntry, error)
}

type Service struct {
	userRepo   repository.UserRepository
	saleRepo   repository.SaleRepository
	goalRepo   repository.GoalRepository
	reportRepo repository.CommissionReportRepository

	// relógio injetável para fixar a data de referência em testes
	now func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	saleRepo repository.SaleRepository,
	goalRepo repository.GoalRepository,
	reportRepo repository.CommissionReportRepository,
) *Service {
	return &Service{
		userRepo:   userRepo,
		saleRepo:   saleRepo,
		goalRepo:   goalRepo,
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// WithClock substitui o relógio do serviço. Usado em testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetSellerReport monta o relatório do vendedor para o período: total de
// vendas não canceladas, comissão pela tabela do regime de contratação e
// ritmo de meta ponderado por dias úteis.
func (s *Service) GetSellerReport(sellerID, month, year int) (*domain.SellerReport, error) {
	if month < 1 || month > 12 || year == 0 {
		return nil, ErrInvalidPeriod
	}

	seller, err := s.userRepo.GetUserByID(sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil || seller.Deleted {
		return nil, ErrSellerNotFound
	}

	return s.buildSellerReport(seller, month, year)
}

// GetTeamReport consolida todos os vendedores ativos e calcula o bônus
// de supervisão sobre o faturamento total do time.
func (s *Service) GetTeamReport(month, year int) (*domain.TeamReport, error) {
	if month < 1 || month > 12 || year == 0 {
		return nil, ErrInvalidPeriod
	}

	sellers, err := s.userRepo.ListSellers()
	if err != nil {
		return nil, err
	}

	report := &domain.TeamReport{
		Month:   month,
		Year:    year,
		Sellers: make([]*domain.SellerReport, 0, len(sellers)),
	}

	for _, seller := range sellers {
		sellerReport, err := s.buildSellerReport(seller, month, year)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"seller_id": seller.ID,
				"month":     month,
				"year":      year,
			}).WithError(err).Error("Erro ao montar relatório do vendedor, seguindo com os demais")
			continue
		}

		report.TeamTotalSales += sellerReport.TotalSales
		report.Sellers = append(report.Sellers, sellerReport)
	}

	report.TeamTotalSales = utils.RoundWithTwoDecimalPlace(report.TeamTotalSales)
	report.SupervisorBonus = commissioning.SupervisorBonus(report.TeamTotalSales)

	return report, nil
}

// SyncMonthlyReports persiste o snapshot de fechamento de cada vendedor
// para o período. Reexecuções sobrescrevem o snapshot existente, então a
// cron mensal pode rodar mais de uma vez sem duplicar registros.
func (s *Service) SyncMonthlyReports(month, year int) (int, error) {
	if month < 1 || month > 12 || year == 0 {
		return 0, ErrInvalidPeriod
	}

	sellers, err := s.userRepo.ListSellers()
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, seller := range sellers {
		sellerReport, err := s.buildSellerReport(seller, month, year)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"seller_id": seller.ID,
				"month":     month,
				"year":      year,
			}).WithError(err).Error("Erro ao montar snapshot do vendedor")
			continue
		}

		entry := &domain.CommissionReportEntry{
			SellerID: seller.ID,
			Month:    month,
			Year:     year,
			Report:   sellerReport,
		}

		if err := s.reportRepo.SaveOrUpdate(entry); err != nil {
			logrus.WithFields(logrus.Fields{
				"seller_id": seller.ID,
				"month":     month,
				"year":      year,
			}).WithError(err).Error("Erro ao salvar snapshot do vendedor")
			continue
		}

		synced++
	}

	return synced, nil
}

func (s *Service) GetMonthlySnapshot(sellerID, month, year int) (*domain.CommissionReportEntry, error) {
	entry, err := s.reportRepo.GetBySellerAndPeriod(sellerID, month, year)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrSnapshotNotFound
	}

	return entry, nil
}

func (s *Service) ListMonthlySnapshots(month, year int) ([]*domain.CommissionReportEntry, error) {
	if month < 1 || month > 12 || year == 0 {
		return nil, ErrInvalidPeriod
	}

	return s.reportRepo.ListByPeriod(month, year)
}

func (s *Service) buildSellerReport(seller *domain.User, month, year int) (*domain.SellerReport, error) {
	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Second)

	totalSales, err := s.saleRepo.SumGrossAmount(seller.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	saleDates, err := s.saleRepo.GetDistinctSaleDates(seller.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListSales(&domain.SaleFilters{
		SellerID:  &seller.ID,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, err
	}

	var goalAmount float64
	goal, err := s.goalRepo.GetGoal(seller.ID, month, year)
	if err != nil {
		return nil, err
	}
	if goal != nil {
		goalAmount = goal.GoalAmount
	}

	commission := commissioning.CalculateCommission(totalSales, seller.ContractType)
	commission.Amount = utils.RoundWithTwoDecimalPlace(commission.Amount)

	progress := commissioning.CalculateGoalProgress(totalSales, goalAmount, month, year, s.now(), saleDates)

	return &domain.SellerReport{
		SellerID:     seller.ID,
		SellerName:   seller.Name + " " + seller.Lastname,
		ContractType: seller.ContractType,
		Month:        month,
		Year:         year,
		TotalSales:   totalSales,
		SalesCount:   countBillable(sales),
		Commission:   commission,
		Progress:     progress,
	}, nil
}

func countBillable(sales []*domain.Sale) int {
	count := 0
	for _, sale := range sales {
		if sale.Status != domain.SaleStatusCanceled {
			count++
		}
	}
	return count
}
