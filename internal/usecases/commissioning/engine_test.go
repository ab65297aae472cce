package commissioning

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
)

func TestCalculateCommission(t *testing.T) {
	tests := []struct {
		name         string
		totalSales   float64
		contractType domain.ContractType
		wantRate     float64
		wantAmount   float64
	}{
		{
			name:         "PJ abaixo do corte",
			totalSales:   9999.99,
			contractType: domain.ContractTypePJ,
			wantRate:     0.20,
			wantAmount:   1999.998,
		},
		{
			name:         "PJ exatamente no corte usa a taxa superior",
			totalSales:   10000.00,
			contractType: domain.ContractTypePJ,
			wantRate:     0.25,
			wantAmount:   2500.00,
		},
		{
			name:         "CLT abaixo do corte",
			totalSales:   8000.00,
			contractType: domain.ContractTypeCLT,
			wantRate:     0.05,
			wantAmount:   400.00,
		},
		{
			name:         "CLT acima do corte",
			totalSales:   15000.00,
			contractType: domain.ContractTypeCLT,
			wantRate:     0.10,
			wantAmount:   1500.00,
		},
		{
			name:         "regime desconhecido cai na tabela PJ",
			totalSales:   1000.00,
			contractType: domain.ContractType("ESTAGIO"),
			wantRate:     0.20,
			wantAmount:   200.00,
		},
		{
			name:         "sem vendas",
			totalSales:   0,
			contractType: domain.ContractTypePJ,
			wantRate:     0.20,
			wantAmount:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateCommission(tt.totalSales, tt.contractType)

			assert.InDelta(t, tt.wantRate, result.Rate, 1e-9)
			assert.InDelta(t, tt.wantAmount, result.Amount, 1e-9)
		})
	}
}

// A comissão deve ser não decrescente no total de vendas, com o salto
// acontecendo exatamente no corte da meta.
func TestCalculateCommission_Monotonic(t *testing.T) {
	previous := -1.0
	for _, total := range []float64{0, 100, 5000, 9999.99, 10000, 10000.01, 50000} {
		result := CalculateCommission(total, domain.ContractTypePJ)
		assert.GreaterOrEqual(t, result.Amount, previous,
			"comissão caiu ao aumentar vendas de %f", total)
		previous = result.Amount
	}

	below := CalculateCommission(GoalThreshold-0.01, domain.ContractTypePJ)
	above := CalculateCommission(GoalThreshold, domain.ContractTypePJ)
	assert.Equal(t, 0.20, below.Rate)
	assert.Equal(t, 0.25, above.Rate)
}

func TestSupervisorBonus(t *testing.T) {
	tests := []struct {
		teamTotal float64
		want      float64
	}{
		{teamTotal: 0, want: 0},
		{teamTotal: 49999.99, want: 0},
		{teamTotal: 50000, want: 500},
		{teamTotal: 69999.99, want: 500},
		{teamTotal: 70000, want: 1000},
		{teamTotal: 75000, want: 1000},
		{teamTotal: 99999.99, want: 1000},
		{teamTotal: 100000, want: 2000},
		{teamTotal: 350000, want: 2000},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("time com %.2f", tt.teamTotal), func(t *testing.T) {
			assert.Equal(t, tt.want, SupervisorBonus(tt.teamTotal))
		})
	}
}

func TestCalculateGoalProgress(t *testing.T) {
	// Janeiro de 2024: 23 dias úteis; dia 12 é sexta-feira (10 úteis decorridos).
	today := time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)

	progress := CalculateGoalProgress(12000, 23000, 1, 2024, today, []time.Time{
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, 23, progress.TotalBusinessDays)
	assert.Equal(t, 10, progress.BusinessDaysElapsed)
	assert.Equal(t, 13, progress.BusinessDaysLeft)
	// 23000 * 10/23 = 10000
	assert.InDelta(t, 10000, progress.ExpectedProgress, 1e-9)
	assert.InDelta(t, 2000, progress.MetaGap, 1e-9)
	assert.InDelta(t, 120, progress.GoalPercentage, 1e-9)
	// (23000-12000)/13
	assert.InDelta(t, 11000.0/13.0, progress.RemainingDailyTarget, 1e-9)
	// 10 dias úteis decorridos, vendas em 2 deles
	assert.Equal(t, 8, progress.ZeroDaysCount)
}

func TestCalculateGoalProgress_MonthBoundaries(t *testing.T) {
	saleDates := []time.Time{}

	t.Run("mês passado aparece totalmente decorrido", func(t *testing.T) {
		today := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		progress := CalculateGoalProgress(5000, 10000, 1, 2024, today, saleDates)

		assert.Equal(t, progress.TotalBusinessDays, progress.BusinessDaysElapsed)
		assert.Equal(t, 0, progress.BusinessDaysLeft)
		assert.InDelta(t, 10000, progress.ExpectedProgress, 1e-9)
	})

	t.Run("mês futuro aparece totalmente por decorrer", func(t *testing.T) {
		today := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
		progress := CalculateGoalProgress(0, 10000, 3, 2024, today, saleDates)

		assert.Equal(t, 0, progress.BusinessDaysElapsed)
		assert.Equal(t, progress.TotalBusinessDays, progress.BusinessDaysLeft)
		assert.Zero(t, progress.ExpectedProgress)
		assert.Zero(t, progress.GoalPercentage)
	})
}

// Qualquer mês real tem entre 20 e 23 dias úteis.
func TestCalculateGoalProgress_BusinessDayCountSanity(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			today := time.Date(year, time.Month(month), 28, 0, 0, 0, 0, time.UTC)
			progress := CalculateGoalProgress(0, 0, month, year, today, nil)

			assert.GreaterOrEqual(t, progress.TotalBusinessDays, 20, "%d-%02d", year, month)
			assert.LessOrEqual(t, progress.TotalBusinessDays, 23, "%d-%02d", year, month)
			assert.LessOrEqual(t, progress.BusinessDaysElapsed, progress.TotalBusinessDays)
		}
	}
}

// Os campos derivados nunca podem virar NaN ou Inf, mesmo com meta zero.
func TestCalculateGoalProgress_ZeroGuards(t *testing.T) {
	today := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	for _, goal := range []float64{0, 10000} {
		for _, total := range []float64{0, 500} {
			progress := CalculateGoalProgress(total, goal, 2, 2024, today, nil)

			for name, v := range map[string]float64{
				"expected_progress":      progress.ExpectedProgress,
				"meta_gap":               progress.MetaGap,
				"goal_percentage":        progress.GoalPercentage,
				"remaining_daily_target": progress.RemainingDailyTarget,
			} {
				assert.False(t, math.IsNaN(v), "%s é NaN (meta=%f total=%f)", name, goal, total)
				assert.False(t, math.IsInf(v, 0), "%s é Inf (meta=%f total=%f)", name, goal, total)
			}
		}
	}
}
