package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/dfcastro/commission-tracker-api/infrastructure/repository/mocks"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Relógio de referência: 12 de janeiro de 2024, sexta-feira
var testClock = time.Date(2024, 1, 12, 15, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockUserRepository,
	*mocks.MockSaleRepository,
	*mocks.MockGoalRepository,
	*mocks.MockCommissionReportRepository,
) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)
	reportRepo := mocks.NewMockCommissionReportRepository(ctrl)

	service := NewService(userRepo, saleRepo, goalRepo, reportRepo).
		WithClock(func() time.Time { return testClock })

	return service, userRepo, saleRepo, goalRepo, reportRepo
}

func sellerPJ(id int) *domain.User {
	return &domain.User{
		ID:           id,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@example.com",
		Active:       true,
		RoleID:       domain.RoleSeller,
		ContractType: domain.ContractTypePJ,
	}
}

func TestService_GetSellerReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, saleRepo, goalRepo, _ := newTestService(ctrl)

	seller := sellerPJ(1)

	userRepo.EXPECT().GetUserByID(1).Return(seller, nil)

	saleRepo.EXPECT().
		SumGrossAmount(1, gomock.Any(), gomock.Any()).
		Return(12000.0, nil)

	saleRepo.EXPECT().
		GetDistinctSaleDates(1, gomock.Any(), gomock.Any()).
		Return([]time.Time{
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		}, nil)

	saleRepo.EXPECT().
		ListSales(gomock.Any()).
		Return([]*domain.Sale{
			{ID: 1, SellerID: 1, GrossAmount: 7000, Status: domain.SaleStatusConfirmed},
			{ID: 2, SellerID: 1, GrossAmount: 5000, Status: domain.SaleStatusPending},
			{ID: 3, SellerID: 1, GrossAmount: 900, Status: domain.SaleStatusCanceled},
		}, nil)

	goalRepo.EXPECT().
		GetGoal(1, 1, 2024).
		Return(&domain.MonthlyGoal{SellerID: 1, Month: 1, Year: 2024, GoalAmount: 23000}, nil)

	report, err := service.GetSellerReport(1, 1, 2024)
	assert.NoError(t, err)

	assert.Equal(t, "Ana Souza", report.SellerName)
	assert.Equal(t, 12000.0, report.TotalSales)
	// Vendas canceladas saem da contagem
	assert.Equal(t, 2, report.SalesCount)

	// PJ acima da meta de 10 mil: 25%
	assert.Equal(t, 0.25, report.Commission.Rate)
	assert.Equal(t, 3000.0, report.Commission.Amount)

	// Janeiro de 2024 tem 23 dias úteis; até sexta dia 12 decorreram 10.
	// Meta de 23.000 => esperado 10.000, e o vendedor está 2.000 à frente.
	assert.Equal(t, 23, report.Progress.TotalBusinessDays)
	assert.Equal(t, 10, report.Progress.BusinessDaysElapsed)
	assert.InDelta(t, 10000.0, report.Progress.ExpectedProgress, 0.01)
	assert.InDelta(t, 2000.0, report.Progress.MetaGap, 0.01)
}

func TestService_GetSellerReport_withoutGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, saleRepo, goalRepo, _ := newTestService(ctrl)

	userRepo.EXPECT().GetUserByID(1).Return(sellerPJ(1), nil)
	saleRepo.EXPECT().SumGrossAmount(1, gomock.Any(), gomock.Any()).Return(5000.0, nil)
	saleRepo.EXPECT().GetDistinctSaleDates(1, gomock.Any(), gomock.Any()).Return(nil, nil)
	saleRepo.EXPECT().ListSales(gomock.Any()).Return(nil, nil)
	goalRepo.EXPECT().GetGoal(1, 1, 2024).Return(nil, nil)

	report, err := service.GetSellerReport(1, 1, 2024)
	assert.NoError(t, err)

	// Sem meta cadastrada o progresso fica zerado, sem divisão por zero
	assert.Equal(t, 0.0, report.Progress.GoalAmount)
	assert.Equal(t, 0.0, report.Progress.GoalPercentage)
	assert.Equal(t, 0.0, report.Progress.ExpectedProgress)

	// Comissão abaixo da meta: 20% para PJ
	assert.Equal(t, 0.20, report.Commission.Rate)
	assert.Equal(t, 1000.0, report.Commission.Amount)
}

func TestService_GetSellerReport_sellerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, _, _, _ := newTestService(ctrl)

	userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

	_, err := service.GetSellerReport(99, 1, 2024)
	assert.ErrorIs(t, err, ErrSellerNotFound)
}

func TestService_GetTeamReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, saleRepo, goalRepo, _ := newTestService(ctrl)

	ana := sellerPJ(1)
	bruno := sellerPJ(2)
	bruno.Name = "Bruno"
	bruno.ContractType = domain.ContractTypeCLT

	userRepo.EXPECT().ListSellers().Return([]*domain.User{ana, bruno}, nil)

	for _, id := range []int{1, 2} {
		saleRepo.EXPECT().SumGrossAmount(id, gomock.Any(), gomock.Any()).Return(40000.0, nil)
		saleRepo.EXPECT().GetDistinctSaleDates(id, gomock.Any(), gomock.Any()).Return(nil, nil)
		saleRepo.EXPECT().ListSales(gomock.Any()).Return(nil, nil)
		goalRepo.EXPECT().GetGoal(id, 1, 2024).Return(nil, nil)
	}

	report, err := service.GetTeamReport(1, 2024)
	assert.NoError(t, err)

	assert.Equal(t, 80000.0, report.TeamTotalSales)
	// Faixa de 70 mil: bônus de 1.000
	assert.Equal(t, 1000.0, report.SupervisorBonus)
	assert.Len(t, report.Sellers, 2)

	// Cada regime usa sua própria tabela
	assert.Equal(t, 0.25, report.Sellers[0].Commission.Rate)
	assert.Equal(t, 0.10, report.Sellers[1].Commission.Rate)
}

func TestService_SyncMonthlyReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo, saleRepo, goalRepo, reportRepo := newTestService(ctrl)

	ana := sellerPJ(1)
	bruno := sellerPJ(2)

	userRepo.EXPECT().ListSellers().Return([]*domain.User{ana, bruno}, nil)

	for _, id := range []int{1, 2} {
		saleRepo.EXPECT().SumGrossAmount(id, gomock.Any(), gomock.Any()).Return(1000.0, nil)
		saleRepo.EXPECT().GetDistinctSaleDates(id, gomock.Any(), gomock.Any()).Return(nil, nil)
		saleRepo.EXPECT().ListSales(gomock.Any()).Return(nil, nil)
		goalRepo.EXPECT().GetGoal(id, 12, 2023).Return(nil, nil)
	}

	// Falha em um vendedor não derruba o fechamento dos demais
	reportRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(assert.AnError)
	reportRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	synced, err := service.SyncMonthlyReports(12, 2023)
	assert.NoError(t, err)
	assert.Equal(t, 1, synced)
}

func TestService_invalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newTestService(ctrl)

	_, err := service.GetSellerReport(1, 13, 2024)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.GetTeamReport(0, 2024)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.ListMonthlySnapshots(1, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
