package goaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/dfcastro/commission-tracker-api/infrastructure/repository/mocks"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (GoalManager, *mocks.MockGoalRepository, *mocks.MockUserRepository) {
	goalRepo := mocks.NewMockGoalRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	return NewService(goalRepo, userRepo), goalRepo, userRepo
}

func TestService_SetGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, goalRepo, userRepo := newTestService(ctrl)

	goal := &domain.MonthlyGoal{SellerID: 1, Month: 1, Year: 2024, GoalAmount: 23000}

	userRepo.EXPECT().
		GetUserByID(1).
		Return(&domain.User{ID: 1, Active: true, RoleID: domain.RoleSeller}, nil)

	goalRepo.EXPECT().UpsertGoal(goal).Return(goal, nil)

	saved, err := service.SetGoal(goal)
	assert.NoError(t, err)
	assert.Equal(t, 23000.0, saved.GoalAmount)
}

func TestService_SetGoal_validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, userRepo := newTestService(ctrl)
	userRepo.EXPECT().GetUserByID(gomock.Any()).Return(&domain.User{ID: 1}, nil).AnyTimes()

	_, err := service.SetGoal(&domain.MonthlyGoal{SellerID: 1, Month: 13, Year: 2024, GoalAmount: 1000})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.SetGoal(&domain.MonthlyGoal{SellerID: 1, Month: 1, Year: 2024, GoalAmount: 0})
	assert.ErrorIs(t, err, ErrInvalidGoalAmount)

	_, err = service.SetGoal(&domain.MonthlyGoal{SellerID: 1, Month: 1, GoalAmount: 1000})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_GetGoal_notFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, goalRepo, _ := newTestService(ctrl)

	goalRepo.EXPECT().GetGoal(1, 2, 2024).Return(nil, nil)

	_, err := service.GetGoal(1, 2, 2024)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}
