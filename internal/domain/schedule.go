package domain

import "time"

// RecurrenceType é a cadência de um agendamento recorrente.
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// RecurringSchedule define o envio recorrente de uma mensagem de WhatsApp.
// DayOfWeek (0=domingo..6=sábado) só vale para cadência semanal;
// DayOfMonth (1..31) só vale para cadência mensal.
type RecurringSchedule struct {
	ID                 int            `json:"id"`
	OwnerID            int            `json:"owner_id"`
	TargetPhone        string         `json:"target_phone"`
	MessageTemplate    string         `json:"message_template"`
	RecurrenceType     RecurrenceType `json:"recurrence_type"`
	RecurrenceInterval int            `json:"recurrence_interval"`
	DayOfWeek          *int           `json:"day_of_week"`
	DayOfMonth         *int           `json:"day_of_month"`
	ExecutionTime      string         `json:"execution_time"` // "HH:MM"
	StartDate          time.Time      `json:"start_date"`
	EndDate            *time.Time     `json:"end_date"`
	IsActive           bool           `json:"is_active"`
	TotalExecutions    int            `json:"total_executions"`
	MaxExecutions      *int           `json:"max_executions"`
	LastExecutionDate  *time.Time     `json:"last_execution_date"`
	NextExecutionDate  *time.Time     `json:"next_execution_date"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type UpdateScheduleRequest struct {
	ID                 int     `json:"id"`
	TargetPhone        *string `json:"target_phone"`
	MessageTemplate    *string `json:"message_template"`
	RecurrenceType     *string `json:"recurrence_type"`
	RecurrenceInterval *int    `json:"recurrence_interval"`
	DayOfWeek          *int    `json:"day_of_week"`
	DayOfMonth         *int    `json:"day_of_month"`
	ExecutionTime      *string `json:"execution_time"`
	StartDate          *string `json:"start_date"`
	EndDate            *string `json:"end_date"`
	IsActive           *bool   `json:"is_active"`
	MaxExecutions      *int    `json:"max_executions"`
}
