package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/dfcastro/commission-tracker-api/infrastructure/repository"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/recurring"
	"github.com/sirupsen/logrus"
)

var (
	ErrScheduleNotFound      = errors.New("agendamento não encontrado")
	ErrMissingScheduleData   = errors.New("telefone, mensagem, cadência e data de início são obrigatórios")
	ErrInvalidRecurrence     = errors.New("cadência inválida, use daily, weekly ou monthly")
	ErrInvalidInterval       = errors.New("intervalo de recorrência deve ser maior que zero")
	ErrInvalidDayOfWeek      = errors.New("dia da semana deve estar entre 0 (domingo) e 6 (sábado)")
	ErrInvalidDayOfMonth     = errors.New("dia do mês deve estar entre 1 e 31")
	ErrInvalidExecutionTime  = errors.New("horário de execução inválido, use o formato HH:MM")
	ErrInvalidDateRange      = errors.New("data final deve ser posterior à data de início")
	ErrInvalidMaxExecutions  = errors.New("limite de execuções deve ser maior que zero")
	ErrOwnerNotAllowed       = errors.New("usuário não pode alterar agendamentos de outro usuário")
	ErrMissingRecurrenceData = errors.New("cadência semanal exige dia da semana e mensal exige dia do mês")
	ErrMissingScheduleID     = errors.New("ID do agendamento é obrigatório")
)

type ScheduleManager interface {
	CreateSchedule(schedule *domain.RecurringSchedule) (*domain.RecurringSchedule, error)
	UpdateSchedule(req *domain.UpdateScheduleRequest, requester *domain.Claims) error
	GetScheduleByID(scheduleID int) (*domain.RecurringSchedule, error)
	ListSchedules(requester *domain.Claims) ([]*domain.RecurringSchedule, error)
	DeleteSchedule(scheduleID int, requester *domain.Claims) error
	ListScheduleMessages(scheduleID int) ([]*domain.OutboundMessage, error)
}

type Service struct {
	scheduleRepo repository.ScheduleRepository
	messageRepo  repository.MessageRepository
}

func NewService(scheduleRepo repository.ScheduleRepository, messageRepo repository.MessageRepository) ScheduleManager {
	return &Service{
		scheduleRepo: scheduleRepo,
		messageRepo:  messageRepo,
	}
}

// CreateSchedule valida e persiste um novo agendamento recorrente.
// A primeira data de execução projetada parte da data de início.
func (s *Service) CreateSchedule(schedule *domain.RecurringSchedule) (*domain.RecurringSchedule, error) {
	if schedule.TargetPhone == "" || schedule.MessageTemplate == "" ||
		schedule.RecurrenceType == "" || schedule.StartDate.IsZero() {
		return nil, ErrMissingScheduleData
	}

	if schedule.RecurrenceInterval == 0 {
		schedule.RecurrenceInterval = 1
	}

	if schedule.ExecutionTime == "" {
		schedule.ExecutionTime = "09:00"
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	schedule.IsActive = true
	schedule.TotalExecutions = 0

	// Projeção da primeira execução a partir do dia anterior ao início,
	// então um início que já casa com a cadência é a primeira ocorrência
	next, err := recurring.NextExecutionDate(schedule, schedule.StartDate.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	schedule.NextExecutionDate = &next

	created, err := s.scheduleRepo.CreateSchedule(schedule)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"schedule_id": created.ID,
		"owner_id":    created.OwnerID,
		"recurrence":  created.RecurrenceType,
	}).Info("Agendamento recorrente criado")

	return created, nil
}

func (s *Service) UpdateSchedule(req *domain.UpdateScheduleRequest, requester *domain.Claims) error {
	if req.ID == 0 {
		return ErrMissingScheduleID
	}

	schedule, err := s.scheduleRepo.GetScheduleByID(req.ID)
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	if err := checkOwnership(schedule, requester); err != nil {
		return err
	}

	if req.TargetPhone != nil {
		schedule.TargetPhone = *req.TargetPhone
	}

	if req.MessageTemplate != nil {
		schedule.MessageTemplate = *req.MessageTemplate
	}

	if req.RecurrenceType != nil {
		schedule.RecurrenceType = domain.RecurrenceType(*req.RecurrenceType)
	}

	if req.RecurrenceInterval != nil {
		schedule.RecurrenceInterval = *req.RecurrenceInterval
	}

	if req.DayOfWeek != nil {
		schedule.DayOfWeek = req.DayOfWeek
	}

	if req.DayOfMonth != nil {
		schedule.DayOfMonth = req.DayOfMonth
	}

	if req.ExecutionTime != nil {
		schedule.ExecutionTime = *req.ExecutionTime
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return fmt.Errorf("data de início inválida: %w", err)
		}
		schedule.StartDate = startDate
	}

	if req.EndDate != nil {
		if *req.EndDate == "" {
			schedule.EndDate = nil
		} else {
			endDate, err := time.Parse("2006-01-02", *req.EndDate)
			if err != nil {
				return fmt.Errorf("data final inválida: %w", err)
			}
			schedule.EndDate = &endDate
		}
	}

	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	if req.MaxExecutions != nil {
		schedule.MaxExecutions = req.MaxExecutions
	}

	// Mesmo padrão da criação: linhas antigas podem ter intervalo zerado
	if schedule.RecurrenceInterval == 0 {
		schedule.RecurrenceInterval = 1
	}

	if err := validateSchedule(schedule); err != nil {
		return err
	}

	// Mudanças de cadência invalidam a projeção anterior
	next, err := recurring.NextExecutionDate(schedule, schedule.StartDate.AddDate(0, 0, -1))
	if err != nil {
		return err
	}
	if schedule.LastExecutionDate != nil {
		next, err = recurring.NextExecutionDate(schedule, *schedule.LastExecutionDate)
		if err != nil {
			return err
		}
	}
	schedule.NextExecutionDate = &next

	return s.scheduleRepo.UpdateSchedule(schedule)
}

func (s *Service) GetScheduleByID(scheduleID int) (*domain.RecurringSchedule, error) {
	schedule, err := s.scheduleRepo.GetScheduleByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return schedule, nil
}

// ListSchedules devolve os agendamentos visíveis para o usuário: admin e
// supervisor enxergam todos, vendedor só os próprios.
func (s *Service) ListSchedules(requester *domain.Claims) ([]*domain.RecurringSchedule, error) {
	if requester != nil && requester.UserRoleID == domain.RoleSeller {
		return s.scheduleRepo.ListSchedules(&requester.UserID)
	}

	return s.scheduleRepo.ListSchedules(nil)
}

func (s *Service) DeleteSchedule(scheduleID int, requester *domain.Claims) error {
	schedule, err := s.scheduleRepo.GetScheduleByID(scheduleID)
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	if err := checkOwnership(schedule, requester); err != nil {
		return err
	}

	return s.scheduleRepo.DeleteSchedule(scheduleID)
}

func (s *Service) ListScheduleMessages(scheduleID int) ([]*domain.OutboundMessage, error) {
	schedule, err := s.scheduleRepo.GetScheduleByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return s.messageRepo.ListByScheduleID(scheduleID)
}

func checkOwnership(schedule *domain.RecurringSchedule, requester *domain.Claims) error {
	if requester != nil && requester.UserRoleID == domain.RoleSeller && schedule.OwnerID != requester.UserID {
		return ErrOwnerNotAllowed
	}
	return nil
}

func validateSchedule(schedule *domain.RecurringSchedule) error {
	switch schedule.RecurrenceType {
	case domain.RecurrenceDaily:
	case domain.RecurrenceWeekly:
		if schedule.DayOfWeek == nil {
			return ErrMissingRecurrenceData
		}
		if *schedule.DayOfWeek < 0 || *schedule.DayOfWeek > 6 {
			return ErrInvalidDayOfWeek
		}
	case domain.RecurrenceMonthly:
		if schedule.DayOfMonth == nil {
			return ErrMissingRecurrenceData
		}
		if *schedule.DayOfMonth < 1 || *schedule.DayOfMonth > 31 {
			return ErrInvalidDayOfMonth
		}
	default:
		return ErrInvalidRecurrence
	}

	if schedule.RecurrenceInterval <= 0 {
		return ErrInvalidInterval
	}

	var hour, minute int
	if n, err := fmt.Sscanf(schedule.ExecutionTime, "%d:%d", &hour, &minute); n != 2 || err != nil {
		return ErrInvalidExecutionTime
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ErrInvalidExecutionTime
	}

	if schedule.EndDate != nil && schedule.EndDate.Before(schedule.StartDate) {
		return ErrInvalidDateRange
	}

	if schedule.MaxExecutions != nil && *schedule.MaxExecutions <= 0 {
		return ErrInvalidMaxExecutions
	}

	return nil
}
