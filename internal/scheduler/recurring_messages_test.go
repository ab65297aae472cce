package scheduler

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	pgmocks "github.com/dfcastro/commission-tracker-api/infrastructure/database/postgres/mocks"
	whatsappmocks "github.com/dfcastro/commission-tracker-api/infrastructure/integrator/whatsapp/mocks"
	"github.com/dfcastro/commission-tracker-api/infrastructure/repository"
	"github.com/dfcastro/commission-tracker-api/infrastructure/repository/mocks"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Relógio de referência dos testes: terça-feira, 9 de janeiro de 2024, 10h30
var testClock = time.Date(2024, 1, 9, 10, 30, 0, 0, time.UTC)

func newTestDispatchService(
	conn *pgmocks.MockConn,
	scheduleRepo *mocks.MockScheduleRepository,
	messageRepo *mocks.MockMessageRepository,
	whatsappService *whatsappmocks.MockWhatsAppIntegrator,
) *RecurringDispatchService {
	return &RecurringDispatchService{
		config: RecurringDispatchConfig{
			CronSchedule:    "*/5 * * * *",
			DispatchEnabled: true,
			SendBatch:       20,
		},
		conn:            conn,
		scheduleRepo:    scheduleRepo,
		messageRepo:     messageRepo,
		whatsappService: whatsappService,
		now:             func() time.Time { return testClock },
	}
}

func dailySchedule(id int) *domain.RecurringSchedule {
	return &domain.RecurringSchedule{
		ID:                 id,
		OwnerID:            1,
		TargetPhone:        "5511999990000",
		MessageTemplate:    "Bom dia! Não esqueça de registrar suas vendas.",
		RecurrenceType:     domain.RecurrenceDaily,
		RecurrenceInterval: 1,
		ExecutionTime:      "08:00",
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:           true,
	}
}

func TestRecurringDispatchService_runDispatchCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := pgmocks.NewMockConn(ctrl)
	mockScheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockWhatsApp := whatsappmocks.NewMockWhatsAppIntegrator(ctrl)

	service := newTestDispatchService(mockConn, mockScheduleRepo, mockMessageRepo, mockWhatsApp)

	schedule := dailySchedule(42)

	// Agendamento devido: enfileira e marca executado na mesma transação
	mockScheduleRepo.EXPECT().
		ListActiveSchedules().
		Return([]*domain.RecurringSchedule{schedule}, nil)

	mockConn.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		})

	mockMessageRepo.EXPECT().
		EnqueueTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, message *domain.OutboundMessage) error {
			assert.Equal(t, "42:2024-01-09", message.IdempotencyKey)
			assert.NotEmpty(t, message.Reference)
			assert.Equal(t, schedule.TargetPhone, message.TargetPhone)
			assert.Equal(t, schedule.MessageTemplate, message.Body)
			assert.Equal(t, domain.MessageStatusPending, message.Status)
			return nil
		})

	mockScheduleRepo.EXPECT().
		MarkExecutedTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, execution repository.ScheduleExecution) error {
			assert.Equal(t, 42, execution.ScheduleID)
			assert.Equal(t, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), execution.ExecutionDate)
			assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), execution.NextExecutionDate)
			assert.True(t, execution.StillActive)
			return nil
		})

	// Drenagem: a mensagem pendente sai e é marcada como enviada
	pendingMessage := &domain.OutboundMessage{
		ID:          7,
		ScheduleID:  &schedule.ID,
		TargetPhone: schedule.TargetPhone,
		Body:        schedule.MessageTemplate,
		Status:      domain.MessageStatusPending,
	}

	mockMessageRepo.EXPECT().
		ListPending(20).
		Return([]*domain.OutboundMessage{pendingMessage}, nil)

	mockWhatsApp.EXPECT().
		SendTextMessage(pendingMessage.TargetPhone, pendingMessage.Body).
		Return(nil)

	mockMessageRepo.EXPECT().
		MarkSent(7, gomock.Any()).
		Return(nil)

	service.runDispatchCycle(context.Background())
}

func TestRecurringDispatchService_duplicateStillMarksExecuted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := pgmocks.NewMockConn(ctrl)
	mockScheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockWhatsApp := whatsappmocks.NewMockWhatsAppIntegrator(ctrl)

	service := newTestDispatchService(mockConn, mockScheduleRepo, mockMessageRepo, mockWhatsApp)

	schedule := dailySchedule(42)

	mockScheduleRepo.EXPECT().
		ListActiveSchedules().
		Return([]*domain.RecurringSchedule{schedule}, nil)

	mockConn.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		})

	// Ocorrência já enfileirada em um ciclo anterior que falhou no meio:
	// a mensagem é pulada, mas o agendamento é realinhado mesmo assim
	mockMessageRepo.EXPECT().
		EnqueueTx(gomock.Any(), gomock.Any()).
		Return(repository.ErrDuplicateMessage)

	mockScheduleRepo.EXPECT().
		MarkExecutedTx(gomock.Any(), gomock.Any()).
		Return(nil)

	mockMessageRepo.EXPECT().
		ListPending(20).
		Return([]*domain.OutboundMessage{}, nil)

	service.runDispatchCycle(context.Background())
}

func TestRecurringDispatchService_notDueSchedulesAreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := pgmocks.NewMockConn(ctrl)
	mockScheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockWhatsApp := whatsappmocks.NewMockWhatsAppIntegrator(ctrl)

	service := newTestDispatchService(mockConn, mockScheduleRepo, mockMessageRepo, mockWhatsApp)

	// Horário ainda não alcançado às 10h30
	notYet := dailySchedule(1)
	notYet.ExecutionTime = "18:00"

	// Já executado hoje
	executed := dailySchedule(2)
	lastExecution := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	executed.LastExecutionDate = &lastExecution
	executed.TotalExecutions = 3

	// Cadência semanal em outro dia (9 de janeiro de 2024 é terça)
	wednesday := 3
	otherDay := dailySchedule(3)
	otherDay.RecurrenceType = domain.RecurrenceWeekly
	otherDay.DayOfWeek = &wednesday

	mockScheduleRepo.EXPECT().
		ListActiveSchedules().
		Return([]*domain.RecurringSchedule{notYet, executed, otherDay}, nil)

	// Nenhuma transação deve ser aberta

	mockMessageRepo.EXPECT().
		ListPending(20).
		Return([]*domain.OutboundMessage{}, nil)

	service.runDispatchCycle(context.Background())
}

func TestRecurringDispatchService_invalidCadenceIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := pgmocks.NewMockConn(ctrl)
	mockScheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockWhatsApp := whatsappmocks.NewMockWhatsAppIntegrator(ctrl)

	service := newTestDispatchService(mockConn, mockScheduleRepo, mockMessageRepo, mockWhatsApp)

	broken := dailySchedule(9)
	broken.RecurrenceType = domain.RecurrenceType("fortnightly")

	valid := dailySchedule(10)

	mockScheduleRepo.EXPECT().
		ListActiveSchedules().
		Return([]*domain.RecurringSchedule{broken, valid}, nil)

	// Só o agendamento válido chega à transação
	mockConn.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		})

	mockMessageRepo.EXPECT().
		EnqueueTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, message *domain.OutboundMessage) error {
			assert.Equal(t, "10:2024-01-09", message.IdempotencyKey)
			return nil
		})

	mockScheduleRepo.EXPECT().
		MarkExecutedTx(gomock.Any(), gomock.Any()).
		Return(nil)

	mockMessageRepo.EXPECT().
		ListPending(20).
		Return([]*domain.OutboundMessage{}, nil)

	service.runDispatchCycle(context.Background())
}

func TestRecurringDispatchService_sendFailureMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := pgmocks.NewMockConn(ctrl)
	mockScheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockWhatsApp := whatsappmocks.NewMockWhatsAppIntegrator(ctrl)

	service := newTestDispatchService(mockConn, mockScheduleRepo, mockMessageRepo, mockWhatsApp)

	mockScheduleRepo.EXPECT().
		ListActiveSchedules().
		Return([]*domain.RecurringSchedule{}, nil)

	pendingMessage := &domain.OutboundMessage{
		ID:          11,
		TargetPhone: "5511999990000",
		Body:        "Lembrete",
		Status:      domain.MessageStatusPending,
	}

	mockMessageRepo.EXPECT().
		ListPending(20).
		Return([]*domain.OutboundMessage{pendingMessage}, nil)

	mockWhatsApp.EXPECT().
		SendTextMessage(pendingMessage.TargetPhone, pendingMessage.Body).
		Return(assert.AnError)

	mockMessageRepo.EXPECT().
		MarkFailed(11, assert.AnError.Error()).
		Return(nil)

	service.runDispatchCycle(context.Background())
}

func TestRecurringDispatchService_maxExecutionsDeactivates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := pgmocks.NewMockConn(ctrl)
	mockScheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockWhatsApp := whatsappmocks.NewMockWhatsAppIntegrator(ctrl)

	service := newTestDispatchService(mockConn, mockScheduleRepo, mockMessageRepo, mockWhatsApp)

	// Última execução permitida: após ela o agendamento deve desligar
	maxExecutions := 5
	schedule := dailySchedule(42)
	schedule.TotalExecutions = 4
	schedule.MaxExecutions = &maxExecutions

	mockScheduleRepo.EXPECT().
		ListActiveSchedules().
		Return([]*domain.RecurringSchedule{schedule}, nil)

	mockConn.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		})

	mockMessageRepo.EXPECT().
		EnqueueTx(gomock.Any(), gomock.Any()).
		Return(nil)

	mockScheduleRepo.EXPECT().
		MarkExecutedTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, execution repository.ScheduleExecution) error {
			assert.False(t, execution.StillActive)
			return nil
		})

	mockMessageRepo.EXPECT().
		ListPending(20).
		Return([]*domain.OutboundMessage{}, nil)

	service.runDispatchCycle(context.Background())
}
