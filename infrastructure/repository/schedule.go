package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/dfcastro/commission-tracker-api/infrastructure/database/postgres"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
)

const recurringSchedulesTable = "recurring_schedules"

var scheduleColumns = []string{
	"id", "owner_id", "target_phone", "message_template",
	"recurrence_type", "recurrence_interval", "day_of_week", "day_of_month",
	"execution_time", "start_date", "end_date", "is_active",
	"total_executions", "max_executions", "last_execution_date", "next_execution_date",
	"created_at", "updated_at",
}

// ScheduleExecution é o novo estado do agendamento após um disparo,
// aplicado junto com o enfileiramento da mensagem na mesma transação.
type ScheduleExecution struct {
	ScheduleID        int
	ExecutionDate     time.Time
	NextExecutionDate time.Time
	StillActive       bool
}

type ScheduleRepository interface {
	CreateSchedule(schedule *domain.RecurringSchedule) (*domain.RecurringSchedule, error)
	UpdateSchedule(schedule *domain.RecurringSchedule) error
	GetScheduleByID(scheduleID int) (*domain.RecurringSchedule, error)
	ListSchedules(ownerID *int) ([]*domain.RecurringSchedule, error)
	ListActiveSchedules() ([]*domain.RecurringSchedule, error)
	DeleteSchedule(scheduleID int) error
	MarkExecutedTx(tx *sql.Tx, execution ScheduleExecution) error
}

type scheduleRepository struct {
	conn *postgres.Connection
}

func NewScheduleRepository(conn *postgres.Connection) ScheduleRepository {
	return &scheduleRepository{
		conn: conn,
	}
}

func (r *scheduleRepository) CreateSchedule(schedule *domain.RecurringSchedule) (*domain.RecurringSchedule, error) {
	query := squirrel.
		Insert(recurringSchedulesTable).
		Columns(
			"owner_id", "target_phone", "message_template",
			"recurrence_type", "recurrence_interval", "day_of_week", "day_of_month",
			"execution_time", "start_date", "end_date", "is_active",
			"max_executions", "next_execution_date",
		).
		Values(
			schedule.OwnerID,
			schedule.TargetPhone,
			schedule.MessageTemplate,
			schedule.RecurrenceType,
			schedule.RecurrenceInterval,
			schedule.DayOfWeek,
			schedule.DayOfMonth,
			schedule.ExecutionTime,
			schedule.StartDate.Format(time.DateOnly),
			formatDatePtr(schedule.EndDate),
			schedule.IsActive,
			schedule.MaxExecutions,
			formatDatePtr(schedule.NextExecutionDate),
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	scheduleSQL, scheduleArgs, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	err = r.conn.QueryRow(scheduleSQL, scheduleArgs...).
		Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir agendamento")
	}

	return schedule, nil
}

func (r *scheduleRepository) UpdateSchedule(schedule *domain.RecurringSchedule) error {
	query := squirrel.
		Update(recurringSchedulesTable).
		Set("target_phone", schedule.TargetPhone).
		Set("message_template", schedule.MessageTemplate).
		Set("recurrence_type", schedule.RecurrenceType).
		Set("recurrence_interval", schedule.RecurrenceInterval).
		Set("day_of_week", schedule.DayOfWeek).
		Set("day_of_month", schedule.DayOfMonth).
		Set("execution_time", schedule.ExecutionTime).
		Set("start_date", schedule.StartDate.Format(time.DateOnly)).
		Set("end_date", formatDatePtr(schedule.EndDate)).
		Set("is_active", schedule.IsActive).
		Set("total_executions", schedule.TotalExecutions).
		Set("max_executions", schedule.MaxExecutions).
		Set("next_execution_date", formatDatePtr(schedule.NextExecutionDate)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": schedule.ID}).
		PlaceholderFormat(squirrel.Dollar)

	scheduleSQL, scheduleArgs, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = r.conn.Exec(scheduleSQL, scheduleArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar agendamento")
	}

	return nil
}

func (r *scheduleRepository) GetScheduleByID(scheduleID int) (*domain.RecurringSchedule, error) {
	queryBuilder := squirrel.
		Select(scheduleColumns...).
		From(recurringSchedulesTable).
		Where(squirrel.Eq{"id": scheduleID}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	row := r.conn.QueryRow(query, args...)
	schedule, err := scanSchedule(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear agendamento")
	}

	return schedule, nil
}

func (r *scheduleRepository) ListSchedules(ownerID *int) ([]*domain.RecurringSchedule, error) {
	queryBuilder := squirrel.
		Select(scheduleColumns...).
		From(recurringSchedulesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if ownerID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"owner_id": *ownerID})
	}

	return r.list(queryBuilder)
}

// ListActiveSchedules devolve os agendamentos candidatos de um ciclo do
// despachante. O filtro fino (hora, âncora de cadência, guarda diária)
// fica no motor de recorrência.
func (r *scheduleRepository) ListActiveSchedules() ([]*domain.RecurringSchedule, error) {
	queryBuilder := squirrel.
		Select(scheduleColumns...).
		From(recurringSchedulesTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(queryBuilder)
}

func (r *scheduleRepository) list(queryBuilder squirrel.SelectBuilder) ([]*domain.RecurringSchedule, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar agendamentos")
	}
	defer rows.Close()

	schedules := make([]*domain.RecurringSchedule, 0)
	for rows.Next() {
		schedule, err := scanScheduleRows(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear agendamentos")
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return schedules, nil
}

func (r *scheduleRepository) DeleteSchedule(scheduleID int) error {
	query, args, err := squirrel.
		Delete(recurringSchedulesTable).
		Where(squirrel.Eq{"id": scheduleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir agendamento")
	}

	return nil
}

// MarkExecutedTx aplica o novo estado do agendamento dentro da transação
// do disparo: incrementa o contador, grava a data da ocorrência e a
// próxima data, e desativa quando o fim ou o limite foi alcançado.
func (r *scheduleRepository) MarkExecutedTx(tx *sql.Tx, execution ScheduleExecution) error {
	query, args, err := squirrel.
		Update(recurringSchedulesTable).
		Set("total_executions", squirrel.Expr("total_executions + 1")).
		Set("last_execution_date", execution.ExecutionDate.Format(time.DateOnly)).
		Set("next_execution_date", execution.NextExecutionDate.Format(time.DateOnly)).
		Set("is_active", execution.StillActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": execution.ScheduleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = tx.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao marcar agendamento como executado")
	}

	return nil
}

func formatDatePtr(date *time.Time) interface{} {
	if date == nil {
		return nil
	}
	return date.Format(time.DateOnly)
}

func scanSchedule(row *sql.Row) (*domain.RecurringSchedule, error) {
	var schedule domain.RecurringSchedule
	err := row.Scan(
		&schedule.ID,
		&schedule.OwnerID,
		&schedule.TargetPhone,
		&schedule.MessageTemplate,
		&schedule.RecurrenceType,
		&schedule.RecurrenceInterval,
		&schedule.DayOfWeek,
		&schedule.DayOfMonth,
		&schedule.ExecutionTime,
		&schedule.StartDate,
		&schedule.EndDate,
		&schedule.IsActive,
		&schedule.TotalExecutions,
		&schedule.MaxExecutions,
		&schedule.LastExecutionDate,
		&schedule.NextExecutionDate,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func scanScheduleRows(rows *sql.Rows) (*domain.RecurringSchedule, error) {
	var schedule domain.RecurringSchedule
	err := rows.Scan(
		&schedule.ID,
		&schedule.OwnerID,
		&schedule.TargetPhone,
		&schedule.MessageTemplate,
		&schedule.RecurrenceType,
		&schedule.RecurrenceInterval,
		&schedule.DayOfWeek,
		&schedule.DayOfMonth,
		&schedule.ExecutionTime,
		&schedule.StartDate,
		&schedule.EndDate,
		&schedule.IsActive,
		&schedule.TotalExecutions,
		&schedule.MaxExecutions,
		&schedule.LastExecutionDate,
		&schedule.NextExecutionDate,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}
