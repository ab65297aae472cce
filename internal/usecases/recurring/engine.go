// Package recurring decide quando um agendamento recorrente deve disparar
// e calcula a próxima data de execução. As funções são puras: a data e a
// hora de referência entram por parâmetro, nunca pelo relógio do sistema.
package recurring

import (
	"fmt"
	"time"

	"github.com/dfcastro/commission-tracker-api/internal/domain"
)

// ScheduleState é o estado do agendamento em uma avaliação.
type ScheduleState string

const (
	// StateDeactivated: agendamento desligado (is_active = false).
	StateDeactivated ScheduleState = "deactivated"
	// StateExhausted: passou da data final ou do limite de execuções.
	StateExhausted ScheduleState = "exhausted"
	// StateExecutedToday: já disparou hoje (guarda de idempotência diária).
	StateExecutedToday ScheduleState = "executed_today"
	// StatePending: ativo, mas hoje não é dia ou ainda não deu a hora.
	StatePending ScheduleState = "pending"
	// StateDueToday: elegível para disparar agora.
	StateDueToday ScheduleState = "due_today"
)

// InvalidScheduleError indica uma cadência desconhecida. Diferente do
// regime de contratação da comissão, cadência não tem padrão seguro:
// chutar uma enviaria mensagem no dia errado, então o erro é fatal para
// o agendamento em questão.
type InvalidScheduleError struct {
	ScheduleID     int
	RecurrenceType domain.RecurrenceType
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("agendamento %d com cadência inválida: %q", e.ScheduleID, e.RecurrenceType)
}

// EvaluateState classifica o agendamento para a data/hora de referência.
// now carrega a hora do dia; today deve ser a mesma data com hora zerada
// (o despachante usa utils.TruncateToDay).
func EvaluateState(schedule *domain.RecurringSchedule, today, now time.Time) (ScheduleState, error) {
	if !schedule.IsActive {
		return StateDeactivated, nil
	}

	if schedule.EndDate != nil && today.After(dateOnly(*schedule.EndDate)) {
		return StateExhausted, nil
	}

	if schedule.MaxExecutions != nil && schedule.TotalExecutions >= *schedule.MaxExecutions {
		return StateExhausted, nil
	}

	// Guarda "já rodou hoje". A exigência de TotalExecutions > 0 preserva o
	// comportamento observado: um agendamento recém-editado com
	// last_execution_date de hoje mas contador zerado volta a ser elegível.
	if schedule.LastExecutionDate != nil &&
		sameDay(*schedule.LastExecutionDate, today) &&
		schedule.TotalExecutions > 0 {
		return StateExecutedToday, nil
	}

	if today.Before(dateOnly(schedule.StartDate)) {
		return StatePending, nil
	}

	eligible, err := cadenceMatches(schedule, today)
	if err != nil {
		return StatePending, err
	}

	if !eligible || !executionTimeReached(schedule.ExecutionTime, now) {
		return StatePending, nil
	}

	return StateDueToday, nil
}

// IsDue é a projeção booleana de EvaluateState.
func IsDue(schedule *domain.RecurringSchedule, today, now time.Time) (bool, error) {
	state, err := EvaluateState(schedule, today, now)
	if err != nil {
		return false, err
	}
	return state == StateDueToday, nil
}

// cadenceMatches verifica a âncora da cadência para a data de referência.
//
// Cadência diária não confere daysSinceStart % interval: qualquer dia a
// partir de start_date passa, e o intervalo só age na próxima data
// calculada. Um agendamento "a cada 3 dias" portanto dispara todo dia
// enquanto next_execution_date não for respeitado pelo chamador. O
// comportamento vem do sistema original e há consumidor que depende dele;
// não "corrigir" aqui.
func cadenceMatches(schedule *domain.RecurringSchedule, today time.Time) (bool, error) {
	switch schedule.RecurrenceType {
	case domain.RecurrenceDaily:
		return true, nil

	case domain.RecurrenceWeekly:
		if schedule.DayOfWeek == nil {
			return false, &InvalidScheduleError{ScheduleID: schedule.ID, RecurrenceType: schedule.RecurrenceType}
		}
		return int(today.Weekday()) == *schedule.DayOfWeek, nil

	case domain.RecurrenceMonthly:
		if schedule.DayOfMonth == nil {
			return false, &InvalidScheduleError{ScheduleID: schedule.ID, RecurrenceType: schedule.RecurrenceType}
		}
		return today.Day() == *schedule.DayOfMonth, nil

	default:
		return false, &InvalidScheduleError{ScheduleID: schedule.ID, RecurrenceType: schedule.RecurrenceType}
	}
}

// executionTimeReached compara com granularidade de minuto usando >=,
// então reavaliar o mesmo dia depois da hora continua elegível (a guarda
// de "já rodou hoje" é quem impede o disparo duplicado).
func executionTimeReached(executionTime string, now time.Time) bool {
	var hour, minute int
	if _, err := fmt.Sscanf(executionTime, "%d:%d", &hour, &minute); err != nil {
		// Hora malformada nunca dispara; o CRUD valida o formato na entrada.
		return false
	}

	return now.Hour()*60+now.Minute() >= hour*60+minute
}

// NextExecutionDate avança a partir de from conforme a cadência.
// Para mensal, o dia do mês é prensado para o último dia do mês alvo
// (dia 31 em fevereiro vira 28/29, sem transbordar para março).
func NextExecutionDate(schedule *domain.RecurringSchedule, from time.Time) (time.Time, error) {
	interval := schedule.RecurrenceInterval
	if interval < 1 {
		interval = 1
	}

	switch schedule.RecurrenceType {
	case domain.RecurrenceDaily:
		return dateOnly(from).AddDate(0, 0, interval), nil

	case domain.RecurrenceWeekly:
		return dateOnly(from).AddDate(0, 0, 7*interval), nil

	case domain.RecurrenceMonthly:
		if schedule.DayOfMonth == nil {
			return time.Time{}, &InvalidScheduleError{ScheduleID: schedule.ID, RecurrenceType: schedule.RecurrenceType}
		}

		firstOfTarget := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location()).
			AddDate(0, interval, 0)
		lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

		day := *schedule.DayOfMonth
		if day > lastDay {
			day = lastDay
		}

		return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, from.Location()), nil

	default:
		return time.Time{}, &InvalidScheduleError{ScheduleID: schedule.ID, RecurrenceType: schedule.RecurrenceType}
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
