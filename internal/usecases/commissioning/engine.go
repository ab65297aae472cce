// Package commissioning implementa as regras de comissão e de ritmo de meta.
// Todas as funções são puras: recebem a data de referência explicitamente e
// não tocam relógio, banco ou rede.
package commissioning

import (
	"time"

	"github.com/dfcastro/commission-tracker-api/internal/domain"
)

// GoalThreshold é o corte de faturamento (constante de negócio) que separa
// a taxa inferior da superior. Igualdade resolve para a taxa superior.
const GoalThreshold = 10000.00

// RateTable é o par de taxas de um regime de contratação.
type RateTable struct {
	BelowGoal float64
	AboveGoal float64
}

// rateTables é a tabela estática de comissão por regime.
var rateTables = map[domain.ContractType]RateTable{
	domain.ContractTypePJ:  {BelowGoal: 0.20, AboveGoal: 0.25},
	domain.ContractTypeCLT: {BelowGoal: 0.05, AboveGoal: 0.10},
}

// Faixas do bônus de supervisão sobre o faturamento do time (BRL).
// Limites inferiores fechados.
var supervisorBonusBands = []struct {
	From   float64
	Amount float64
}{
	{From: 100000, Amount: 2000},
	{From: 70000, Amount: 1000},
	{From: 50000, Amount: 500},
}

// CalculateCommission seleciona a taxa pelo regime e pelo corte de meta e
// devolve taxa e valor. Regime desconhecido cai na tabela PJ; não há
// condição de erro aqui, o relatório prefere um número aproximado a falhar.
func CalculateCommission(totalSales float64, contractType domain.ContractType) domain.CommissionResult {
	table, ok := rateTables[contractType]
	if !ok {
		table = rateTables[domain.ContractTypePJ]
	}

	rate := table.BelowGoal
	if totalSales >= GoalThreshold {
		rate = table.AboveGoal
	}

	return domain.CommissionResult{
		Rate:   rate,
		Amount: totalSales * rate,
	}
}

// SupervisorBonus devolve o bônus fixo da faixa em que o faturamento do
// time se encaixa, ou zero abaixo da primeira faixa.
func SupervisorBonus(teamTotalSales float64) float64 {
	for _, band := range supervisorBonusBands {
		if teamTotalSales >= band.From {
			return band.Amount
		}
	}
	return 0
}

// CalculateGoalProgress calcula o ritmo do vendedor no mês usando
// interpolação linear ponderada por dias úteis (segunda a sexta, sem
// calendário de feriados). saleDates é o conjunto de datas em que o
// vendedor registrou ao menos uma venda; alimenta a contagem de dias
// zerados. Datas de referência fora do mês são prensadas para o início
// ou o fim dele, então meses passados aparecem 100% decorridos e meses
// futuros 0%.
func CalculateGoalProgress(
	totalSales float64,
	goalAmount float64,
	month int,
	year int,
	today time.Time,
	saleDates []time.Time,
) domain.GoalProgress {
	progress := domain.GoalProgress{GoalAmount: goalAmount}

	refDay := referenceDay(month, year, today)
	soldOn := make(map[string]bool, len(saleDates))
	for _, d := range saleDates {
		soldOn[d.Format(time.DateOnly)] = true
	}

	lastDay := lastDayOfMonth(month, year)
	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if !isBusinessDay(date) {
			continue
		}

		progress.TotalBusinessDays++
		if day <= refDay {
			progress.BusinessDaysElapsed++
			if !soldOn[date.Format(time.DateOnly)] {
				progress.ZeroDaysCount++
			}
		}
	}

	progress.BusinessDaysLeft = progress.TotalBusinessDays - progress.BusinessDaysElapsed

	// Guardas de divisão por zero: nenhum mês real tem zero dias úteis,
	// mas os campos derivados nunca podem virar NaN/Inf.
	if progress.TotalBusinessDays > 0 {
		progress.ExpectedProgress = goalAmount *
			(float64(progress.BusinessDaysElapsed) / float64(progress.TotalBusinessDays))
	}

	progress.MetaGap = totalSales - progress.ExpectedProgress

	if progress.ExpectedProgress > 0 {
		progress.GoalPercentage = (totalSales / progress.ExpectedProgress) * 100
	}

	if progress.BusinessDaysLeft > 0 {
		progress.RemainingDailyTarget = (goalAmount - totalSales) / float64(progress.BusinessDaysLeft)
	}

	return progress
}

// referenceDay prensa a data de referência para dentro do mês consultado.
func referenceDay(month, year int, today time.Time) int {
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if today.Before(firstOfMonth) {
		return 0
	}
	if today.Year() == year && int(today.Month()) == month {
		return today.Day()
	}
	return lastDayOfMonth(month, year)
}

func lastDayOfMonth(month, year int) int {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1).Day()
}

func isBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
