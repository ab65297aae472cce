package goaling

import (
	"errors"
	"fmt"

	"github.com/dfcastro/commission-tracker-api/infrastructure/repository"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	ErrGoalNotFound      = errors.New("meta não encontrada")
	ErrInvalidGoalAmount = errors.New("valor da meta deve ser maior que zero")
	ErrInvalidPeriod     = errors.New("mês deve estar entre 1 e 12 e ano deve ser informado")
)

type GoalManager interface {
	SetGoal(goal *domain.MonthlyGoal) (*domain.MonthlyGoal, error)
	GetGoal(sellerID, month, year int) (*domain.MonthlyGoal, error)
	ListGoalsByPeriod(month, year int) ([]*domain.MonthlyGoal, error)
	DeleteGoal(goalID int) error
}

type Service struct {
	goalRepo repository.GoalRepository
	userRepo repository.UserRepository
}

func NewService(goalRepo repository.GoalRepository, userRepo repository.UserRepository) GoalManager {
	return &Service{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// SetGoal cria ou substitui a meta do vendedor no período.
// A chave (seller_id, month, year) garante uma meta única por mês.
func (s *Service) SetGoal(goal *domain.MonthlyGoal) (*domain.MonthlyGoal, error) {
	if goal.Month < 1 || goal.Month > 12 || goal.Year == 0 {
		return nil, ErrInvalidPeriod
	}

	if goal.GoalAmount <= 0 {
		return nil, ErrInvalidGoalAmount
	}

	seller, err := s.userRepo.GetUserByID(goal.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil || seller.Deleted {
		return nil, fmt.Errorf("vendedor não encontrado para o ID: %d", goal.SellerID)
	}

	saved, err := s.goalRepo.UpsertGoal(goal)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"seller_id": saved.SellerID,
		"month":     saved.Month,
		"year":      saved.Year,
		"amount":    saved.GoalAmount,
	}).Info("Meta mensal definida")

	return saved, nil
}

func (s *Service) GetGoal(sellerID, month, year int) (*domain.MonthlyGoal, error) {
	if month < 1 || month > 12 || year == 0 {
		return nil, ErrInvalidPeriod
	}

	goal, err := s.goalRepo.GetGoal(sellerID, month, year)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	return goal, nil
}

func (s *Service) ListGoalsByPeriod(month, year int) ([]*domain.MonthlyGoal, error) {
	if month < 1 || month > 12 || year == 0 {
		return nil, ErrInvalidPeriod
	}

	return s.goalRepo.ListGoalsByPeriod(month, year)
}

func (s *Service) DeleteGoal(goalID int) error {
	return s.goalRepo.DeleteGoal(goalID)
}
