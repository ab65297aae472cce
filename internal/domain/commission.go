package domain

import "time"

// CommissionResult é o resultado do cálculo de comissão sobre um total
// de vendas. A taxa é única (tabela escalonada, não progressiva).
type CommissionResult struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// GoalProgress descreve o ritmo do vendedor em relação à meta do mês,
// ponderado por dias úteis (segunda a sexta, sem feriados).
type GoalProgress struct {
	GoalAmount           float64 `json:"goal_amount"`
	TotalBusinessDays    int     `json:"total_business_days"`
	BusinessDaysElapsed  int     `json:"business_days_elapsed"`
	BusinessDaysLeft     int     `json:"business_days_left"`
	ExpectedProgress     float64 `json:"expected_progress"`
	MetaGap              float64 `json:"meta_gap"`
	GoalPercentage       float64 `json:"goal_percentage"`
	RemainingDailyTarget float64 `json:"remaining_daily_target"`
	ZeroDaysCount        int     `json:"zero_days_count"`
}

// SellerReport agrega vendas, comissão e progresso de meta de um
// vendedor para um período (mês/ano).
type SellerReport struct {
	SellerID     int              `json:"seller_id"`
	SellerName   string           `json:"seller_name"`
	ContractType ContractType     `json:"contract_type"`
	Month        int              `json:"month"`
	Year         int              `json:"year"`
	TotalSales   float64          `json:"total_sales"`
	SalesCount   int              `json:"sales_count"`
	Commission   CommissionResult `json:"commission"`
	Progress     GoalProgress     `json:"progress"`
}

// TeamReport consolida o time inteiro para o período, incluindo o
// bônus de supervisão por faixa de faturamento.
type TeamReport struct {
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	TeamTotalSales  float64         `json:"team_total_sales"`
	SupervisorBonus float64         `json:"supervisor_bonus"`
	Sellers         []*SellerReport `json:"sellers"`
}

// CommissionReportEntry é o snapshot mensal persistido de um SellerReport,
// gerado pela cron de fechamento no primeiro dia do mês seguinte.
type CommissionReportEntry struct {
	ID        int           `json:"id"`
	SellerID  int           `json:"seller_id"`
	Month     int           `json:"month"`
	Year      int           `json:"year"`
	Report    *SellerReport `json:"report"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
