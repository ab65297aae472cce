package selling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/dfcastro/commission-tracker-api/infrastructure/repository/mocks"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (Seller, *mocks.MockSaleRepository, *mocks.MockUserRepository) {
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	return NewService(saleRepo, userRepo), saleRepo, userRepo
}

func validSale() *domain.Sale {
	return &domain.Sale{
		SellerID:    1,
		ClientName:  "Cliente Exemplo",
		GrossAmount: 2500.00,
		SaleDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_CreateSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, userRepo := newTestService(ctrl)

	userRepo.EXPECT().
		GetUserByID(1).
		Return(&domain.User{ID: 1, Active: true, RoleID: domain.RoleSeller}, nil)

	saleRepo.EXPECT().
		CreateSale(gomock.Any()).
		DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
			// Status não informado cai em pending
			assert.Equal(t, domain.SaleStatusPending, sale.Status)
			sale.ID = 33
			return sale, nil
		})

	created, err := service.CreateSale(validSale())
	assert.NoError(t, err)
	assert.Equal(t, 33, created.ID)
}

func TestService_CreateSale_validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, userRepo := newTestService(ctrl)

	noAmount := validSale()
	noAmount.GrossAmount = 0
	userRepo.EXPECT().GetUserByID(gomock.Any()).Return(&domain.User{ID: 1}, nil).AnyTimes()

	_, err := service.CreateSale(noAmount)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	noClient := validSale()
	noClient.ClientName = ""

	_, err = service.CreateSale(noClient)
	assert.ErrorIs(t, err, ErrMissingSaleData)

	badStatus := validSale()
	badStatus.Status = "shipped"

	_, err = service.CreateSale(badStatus)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateSale_sellerCannotTouchOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, _ := newTestService(ctrl)

	existing := validSale()
	existing.ID = 5
	existing.SellerID = 1

	saleRepo.EXPECT().GetSaleByID(5).Return(existing, nil)

	otherSeller := &domain.Claims{UserID: 2, UserRoleID: domain.RoleSeller}
	newAmount := 3000.0

	err := service.UpdateSale(&domain.UpdateSaleRequest{ID: 5, GrossAmount: &newAmount}, otherSeller)
	assert.ErrorIs(t, err, ErrSellerNotAllowed)
}

func TestService_UpdateSale_supervisorCanCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, _ := newTestService(ctrl)

	existing := validSale()
	existing.ID = 5
	existing.SellerID = 1
	existing.Status = domain.SaleStatusConfirmed

	saleRepo.EXPECT().GetSaleByID(5).Return(existing, nil)
	saleRepo.EXPECT().
		UpdateSale(gomock.Any()).
		DoAndReturn(func(sale *domain.Sale) error {
			assert.Equal(t, domain.SaleStatusCanceled, sale.Status)
			return nil
		})

	supervisor := &domain.Claims{UserID: 9, UserRoleID: domain.RoleSupervisor}
	canceled := string(domain.SaleStatusCanceled)

	err := service.UpdateSale(&domain.UpdateSaleRequest{ID: 5, Status: &canceled}, supervisor)
	assert.NoError(t, err)
}

func TestService_GetSaleByID_notFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, _ := newTestService(ctrl)

	saleRepo.EXPECT().GetSaleByID(404).Return(nil, nil)

	_, err := service.GetSaleByID(404)
	assert.ErrorIs(t, err, ErrSaleNotFound)
}
