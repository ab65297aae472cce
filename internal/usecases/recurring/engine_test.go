package recurring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
)

func intPtr(i int) *int           { return &i }
func datePtr(t time.Time) *time.Time { return &t }

func baseSchedule() *domain.RecurringSchedule {
	return &domain.RecurringSchedule{
		ID:                 1,
		TargetPhone:        "+5511999990000",
		MessageTemplate:    "Bom dia! Lembrete de acompanhamento.",
		RecurrenceType:     domain.RecurrenceDaily,
		RecurrenceInterval: 1,
		ExecutionTime:      "09:00",
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:           true,
	}
}

func at(day int, hour, minute int) (time.Time, time.Time) {
	now := time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
	today := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return today, now
}

func TestIsDue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *domain.RecurringSchedule)
		day     int
		hour    int
		minute  int
		wantDue bool
	}{
		{
			name:    "diário após a hora de execução",
			mutate:  func(s *domain.RecurringSchedule) {},
			day:     10, hour: 9, minute: 30,
			wantDue: true,
		},
		{
			name:    "diário exatamente na hora de execução",
			mutate:  func(s *domain.RecurringSchedule) {},
			day:     10, hour: 9, minute: 0,
			wantDue: true,
		},
		{
			name:    "diário antes da hora de execução",
			mutate:  func(s *domain.RecurringSchedule) {},
			day:     10, hour: 8, minute: 59,
			wantDue: false,
		},
		{
			name:    "inativo nunca dispara",
			mutate:  func(s *domain.RecurringSchedule) { s.IsActive = false },
			day:     10, hour: 10, minute: 0,
			wantDue: false,
		},
		{
			name: "antes da data de início",
			mutate: func(s *domain.RecurringSchedule) {
				s.StartDate = time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
			},
			day: 10, hour: 10, minute: 0,
			wantDue: false,
		},
		{
			name: "depois da data final",
			mutate: func(s *domain.RecurringSchedule) {
				s.EndDate = datePtr(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
			},
			day: 10, hour: 10, minute: 0,
			wantDue: false,
		},
		{
			name: "no próprio dia da data final ainda dispara",
			mutate: func(s *domain.RecurringSchedule) {
				s.EndDate = datePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
			},
			day: 10, hour: 10, minute: 0,
			wantDue: true,
		},
		{
			name: "já executou hoje",
			mutate: func(s *domain.RecurringSchedule) {
				s.LastExecutionDate = datePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
				s.TotalExecutions = 3
			},
			day: 10, hour: 10, minute: 0,
			wantDue: false,
		},
		{
			name: "last_execution_date de hoje com contador zerado volta a ser elegível",
			mutate: func(s *domain.RecurringSchedule) {
				s.LastExecutionDate = datePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
				s.TotalExecutions = 0
			},
			day: 10, hour: 10, minute: 0,
			wantDue: true,
		},
		{
			name: "limite de execuções atingido",
			mutate: func(s *domain.RecurringSchedule) {
				s.MaxExecutions = intPtr(5)
				s.TotalExecutions = 5
			},
			day: 10, hour: 10, minute: 0,
			wantDue: false,
		},
		{
			name: "semanal no dia da semana certo",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceWeekly
				s.DayOfWeek = intPtr(2) // terça
			},
			day: 9, hour: 10, minute: 0, // 2024-01-09 é terça
			wantDue: true,
		},
		{
			name: "semanal de terça não dispara na quarta, independente da hora",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceWeekly
				s.DayOfWeek = intPtr(2)
			},
			day: 10, hour: 23, minute: 59, // 2024-01-10 é quarta
			wantDue: false,
		},
		{
			name: "mensal no dia do mês certo",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceMonthly
				s.DayOfMonth = intPtr(15)
			},
			day: 15, hour: 10, minute: 0,
			wantDue: true,
		},
		{
			name: "mensal fora do dia do mês",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceMonthly
				s.DayOfMonth = intPtr(15)
			},
			day: 16, hour: 10, minute: 0,
			wantDue: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := baseSchedule()
			tt.mutate(schedule)

			today, now := at(tt.day, tt.hour, tt.minute)
			due, err := IsDue(schedule, today, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDue, due)
		})
	}
}

// Comportamento herdado do sistema original: a elegibilidade diária
// ignora o intervalo; um "a cada 3 dias" passa em qualquer dia, e o
// intervalo só age na próxima data calculada.
func TestIsDue_DailyIgnoresIntervalForEligibility(t *testing.T) {
	schedule := baseSchedule()
	schedule.RecurrenceInterval = 3

	for day := 2; day <= 6; day++ {
		today, now := at(day, 10, 0)
		due, err := IsDue(schedule, today, now)

		require.NoError(t, err)
		assert.True(t, due, "dia %d deveria ser elegível mesmo com intervalo 3", day)
	}
}

// Duas avaliações com o mesmo snapshot devem dar a mesma resposta.
func TestIsDue_Idempotent(t *testing.T) {
	schedule := baseSchedule()
	today, now := at(10, 9, 30)

	first, err1 := IsDue(schedule, today, now)
	second, err2 := IsDue(schedule, today, now)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestIsDue_InvalidRecurrenceType(t *testing.T) {
	schedule := baseSchedule()
	schedule.RecurrenceType = domain.RecurrenceType("quarterly")

	today, now := at(10, 10, 0)
	due, err := IsDue(schedule, today, now)

	assert.False(t, due)
	var invalidErr *InvalidScheduleError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, schedule.ID, invalidErr.ScheduleID)
}

func TestEvaluateState_Ordering(t *testing.T) {
	// Desativado ganha de exaurido, que ganha de "já rodou hoje".
	schedule := baseSchedule()
	schedule.IsActive = false
	schedule.EndDate = datePtr(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	schedule.LastExecutionDate = datePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	schedule.TotalExecutions = 2

	today, now := at(10, 10, 0)

	state, err := EvaluateState(schedule, today, now)
	require.NoError(t, err)
	assert.Equal(t, StateDeactivated, state)

	schedule.IsActive = true
	state, err = EvaluateState(schedule, today, now)
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, state)

	schedule.EndDate = nil
	state, err = EvaluateState(schedule, today, now)
	require.NoError(t, err)
	assert.Equal(t, StateExecutedToday, state)
}

func TestNextExecutionDate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *domain.RecurringSchedule)
		from   time.Time
		want   time.Time
	}{
		{
			name:   "diário com intervalo 1",
			mutate: func(s *domain.RecurringSchedule) {},
			from:   time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC),
			want:   time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "diário com intervalo 3",
			mutate: func(s *domain.RecurringSchedule) { s.RecurrenceInterval = 3 },
			from:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "semanal com intervalo 2",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceWeekly
				s.DayOfWeek = intPtr(2)
				s.RecurrenceInterval = 2
			},
			from: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "mensal dia 31 prensa para 29 de fevereiro em ano bissexto",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceMonthly
				s.DayOfMonth = intPtr(31)
			},
			from: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "mensal dia 31 prensa para 28 de fevereiro em ano comum",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceMonthly
				s.DayOfMonth = intPtr(31)
			},
			from: time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "mensal volta ao dia configurado quando o mês alvo comporta",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceMonthly
				s.DayOfMonth = intPtr(31)
			},
			from: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "mensal com intervalo 2",
			mutate: func(s *domain.RecurringSchedule) {
				s.RecurrenceType = domain.RecurrenceMonthly
				s.DayOfMonth = intPtr(15)
				s.RecurrenceInterval = 2
			},
			from: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := baseSchedule()
			tt.mutate(schedule)

			next, err := NextExecutionDate(schedule, tt.from)

			require.NoError(t, err)
			assert.True(t, next.Equal(tt.want), "esperado %s, veio %s", tt.want, next)
		})
	}
}

func TestNextExecutionDate_InvalidRecurrenceType(t *testing.T) {
	schedule := baseSchedule()
	schedule.RecurrenceType = domain.RecurrenceType("hourly")

	_, err := NextExecutionDate(schedule, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	var invalidErr *InvalidScheduleError
	require.ErrorAs(t, err, &invalidErr)
}
