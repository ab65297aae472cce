package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/dfcastro/commission-tracker-api/infrastructure/database/postgres"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
)

const monthlyGoalsTable = "monthly_goals"

type GoalRepository interface {
	UpsertGoal(goal *domain.MonthlyGoal) (*domain.MonthlyGoal, error)
	GetGoal(sellerID, month, year int) (*domain.MonthlyGoal, error)
	ListGoalsByPeriod(month, year int) ([]*domain.MonthlyGoal, error)
	DeleteGoal(goalID int) error
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

// UpsertGoal insere ou substitui a meta do vendedor para o mês.
// A chave de negócio (seller_id, month, year) tem restrição UNIQUE.
func (r *goalRepository) UpsertGoal(goal *domain.MonthlyGoal) (*domain.MonthlyGoal, error) {
	query := squirrel.
		Insert(monthlyGoalsTable).
		Columns("seller_id", "month", "year", "goal_amount").
		Values(goal.SellerID, goal.Month, goal.Year, goal.GoalAmount).
		Suffix(`
			ON CONFLICT (seller_id, month, year) DO UPDATE SET
				goal_amount = EXCLUDED.goal_amount,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	goalSQL, goalArgs, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	err = r.conn.QueryRow(goalSQL, goalArgs...).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar meta")
	}

	return goal, nil
}

func (r *goalRepository) GetGoal(sellerID, month, year int) (*domain.MonthlyGoal, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "month", "year", "goal_amount", "created_at", "updated_at").
		From(monthlyGoalsTable).
		Where(squirrel.Eq{"seller_id": sellerID, "month": month, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	var goal domain.MonthlyGoal
	err = r.conn.QueryRow(query, args...).Scan(
		&goal.ID,
		&goal.SellerID,
		&goal.Month,
		&goal.Year,
		&goal.GoalAmount,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear meta")
	}

	return &goal, nil
}

func (r *goalRepository) ListGoalsByPeriod(month, year int) ([]*domain.MonthlyGoal, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "month", "year", "goal_amount", "created_at", "updated_at").
		From(monthlyGoalsTable).
		Where(squirrel.Eq{"month": month, "year": year}).
		OrderBy("seller_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar metas")
	}
	defer rows.Close()

	goals := make([]*domain.MonthlyGoal, 0)
	for rows.Next() {
		var goal domain.MonthlyGoal
		if err := rows.Scan(
			&goal.ID,
			&goal.SellerID,
			&goal.Month,
			&goal.Year,
			&goal.GoalAmount,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear meta")
		}
		goals = append(goals, &goal)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return goals, nil
}

func (r *goalRepository) DeleteGoal(goalID int) error {
	query, args, err := squirrel.
		Delete(monthlyGoalsTable).
		Where(squirrel.Eq{"id": goalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir meta")
	}

	return nil
}
