package domain

import "time"

// MonthlyGoal é a meta de vendas de um vendedor para um mês específico.
// A chave de negócio é (seller_id, month, year).
type MonthlyGoal struct {
	ID         int       `json:"id"`
	SellerID   int       `json:"seller_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	GoalAmount float64   `json:"goal_amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
