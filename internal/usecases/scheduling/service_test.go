package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/dfcastro/commission-tracker-api/infrastructure/repository/mocks"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (ScheduleManager, *mocks.MockScheduleRepository, *mocks.MockMessageRepository) {
	scheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	return NewService(scheduleRepo, messageRepo), scheduleRepo, messageRepo
}

func weeklySchedule() *domain.RecurringSchedule {
	tuesday := 2
	return &domain.RecurringSchedule{
		OwnerID:         1,
		TargetPhone:     "5511999990000",
		MessageTemplate: "Reunião de equipe amanhã às 9h",
		RecurrenceType:  domain.RecurrenceWeekly,
		DayOfWeek:       &tuesday,
		ExecutionTime:   "08:00",
		StartDate:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_CreateSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, scheduleRepo, _ := newTestService(ctrl)

	scheduleRepo.EXPECT().
		CreateSchedule(gomock.Any()).
		DoAndReturn(func(schedule *domain.RecurringSchedule) (*domain.RecurringSchedule, error) {
			assert.True(t, schedule.IsActive)
			assert.Equal(t, 0, schedule.TotalExecutions)
			assert.Equal(t, 1, schedule.RecurrenceInterval)
			assert.NotNil(t, schedule.NextExecutionDate)
			schedule.ID = 10
			return schedule, nil
		})

	created, err := service.CreateSchedule(weeklySchedule())
	assert.NoError(t, err)
	assert.Equal(t, 10, created.ID)
}

func TestService_CreateSchedule_validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	tests := []struct {
		name    string
		mutate  func(s *domain.RecurringSchedule)
		wantErr error
	}{
		{
			name:    "sem telefone",
			mutate:  func(s *domain.RecurringSchedule) { s.TargetPhone = "" },
			wantErr: ErrMissingScheduleData,
		},
		{
			name:    "cadência desconhecida",
			mutate:  func(s *domain.RecurringSchedule) { s.RecurrenceType = "quarterly" },
			wantErr: ErrInvalidRecurrence,
		},
		{
			name:    "semanal sem dia da semana",
			mutate:  func(s *domain.RecurringSchedule) { s.DayOfWeek = nil },
			wantErr: ErrMissingRecurrenceData,
		},
		{
			name: "dia da semana fora da faixa",
			mutate: func(s *domain.RecurringSchedule) {
				seven := 7
				s.DayOfWeek = &seven
			},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name: "mensal sem dia do mês",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceMonthly
				s.DayOfMonth = nil
			},
			wantErr: ErrMissingRecurrenceData,
		},
		{
			name:    "horário malformado",
			mutate:  func(s *domain.RecurringSchedule) { s.ExecutionTime = "25h00" },
			wantErr: ErrInvalidExecutionTime,
		},
		{
			name:    "hora fora da faixa",
			mutate:  func(s *domain.RecurringSchedule) { s.ExecutionTime = "24:00" },
			wantErr: ErrInvalidExecutionTime,
		},
		{
			name: "data final antes do início",
			mutate: func(s *domain.RecurringSchedule) {
				end := s.StartDate.AddDate(0, 0, -1)
				s.EndDate = &end
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "limite de execuções zerado",
			mutate: func(s *domain.RecurringSchedule) {
				zero := 0
				s.MaxExecutions = &zero
			},
			wantErr: ErrInvalidMaxExecutions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := weeklySchedule()
			tt.mutate(schedule)

			_, err := service.CreateSchedule(schedule)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpdateSchedule_ownership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, scheduleRepo, _ := newTestService(ctrl)

	existing := weeklySchedule()
	existing.ID = 5
	existing.OwnerID = 1

	scheduleRepo.EXPECT().GetScheduleByID(5).Return(existing, nil)

	otherSeller := &domain.Claims{UserID: 2, UserRoleID: domain.RoleSeller}
	newPhone := "5511888880000"

	err := service.UpdateSchedule(&domain.UpdateScheduleRequest{ID: 5, TargetPhone: &newPhone}, otherSeller)
	assert.ErrorIs(t, err, ErrOwnerNotAllowed)
}

func TestService_UpdateSchedule_adminCanEditAny(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, scheduleRepo, _ := newTestService(ctrl)

	existing := weeklySchedule()
	existing.ID = 5
	existing.OwnerID = 1

	scheduleRepo.EXPECT().GetScheduleByID(5).Return(existing, nil)
	scheduleRepo.EXPECT().
		UpdateSchedule(gomock.Any()).
		DoAndReturn(func(schedule *domain.RecurringSchedule) error {
			assert.Equal(t, "5511888880000", schedule.TargetPhone)
			// Linha antiga sem intervalo gravado segue editável
			assert.Equal(t, 1, schedule.RecurrenceInterval)
			assert.NotNil(t, schedule.NextExecutionDate)
			return nil
		})

	admin := &domain.Claims{UserID: 99, UserRoleID: domain.RoleAdmin}
	newPhone := "5511888880000"

	err := service.UpdateSchedule(&domain.UpdateScheduleRequest{ID: 5, TargetPhone: &newPhone}, admin)
	assert.NoError(t, err)
}

func TestService_UpdateSchedule_missingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	admin := &domain.Claims{UserID: 99, UserRoleID: domain.RoleAdmin}

	err := service.UpdateSchedule(&domain.UpdateScheduleRequest{}, admin)
	assert.ErrorIs(t, err, ErrMissingScheduleID)
}

func TestService_ListSchedules_sellerSeesOnlyOwn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, scheduleRepo, _ := newTestService(ctrl)

	seller := &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}

	scheduleRepo.EXPECT().
		ListSchedules(gomock.Any()).
		DoAndReturn(func(ownerID *int) ([]*domain.RecurringSchedule, error) {
			assert.NotNil(t, ownerID)
			assert.Equal(t, 7, *ownerID)
			return nil, nil
		})

	_, err := service.ListSchedules(seller)
	assert.NoError(t, err)

	supervisor := &domain.Claims{UserID: 8, UserRoleID: domain.RoleSupervisor}

	scheduleRepo.EXPECT().
		ListSchedules(gomock.Nil()).
		Return(nil, nil)

	_, err = service.ListSchedules(supervisor)
	assert.NoError(t, err)
}

func TestService_DeleteSchedule_notFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, scheduleRepo, _ := newTestService(ctrl)

	scheduleRepo.EXPECT().GetScheduleByID(404).Return(nil, nil)

	err := service.DeleteSchedule(404, &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestService_ListScheduleMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, scheduleRepo, messageRepo := newTestService(ctrl)

	existing := weeklySchedule()
	existing.ID = 5

	scheduleRepo.EXPECT().GetScheduleByID(5).Return(existing, nil)
	messageRepo.EXPECT().
		ListByScheduleID(5).
		Return([]*domain.OutboundMessage{{ID: 1}, {ID: 2}}, nil)

	messages, err := service.ListScheduleMessages(5)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
}
