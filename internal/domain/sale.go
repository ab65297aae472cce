package domain

import "time"

// SaleStatus acompanha o ciclo de vida de uma venda no CRM.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusConfirmed SaleStatus = "confirmed"
	SaleStatusCanceled  SaleStatus = "canceled"
)

// Sale representa uma venda registrada por um vendedor.
// GrossAmount é o valor bruto negociado com o cliente; a comissão
// é sempre calculada sobre a soma dos valores brutos do período.
type Sale struct {
	ID          int        `json:"id"`
	SellerID    int        `json:"seller_id"`
	ClientName  string     `json:"client_name"`
	ClientPhone *string    `json:"client_phone"`
	GrossAmount float64    `json:"gross_amount"`
	SaleDate    time.Time  `json:"sale_date"`
	Status      SaleStatus `json:"status"`
	Notes       *string    `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type UpdateSaleRequest struct {
	ID          int      `json:"id"`
	ClientName  *string  `json:"client_name"`
	ClientPhone *string  `json:"client_phone"`
	GrossAmount *float64 `json:"gross_amount"`
	SaleDate    *string  `json:"sale_date"`
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
}

// SaleFilters restringe consultas de vendas por vendedor e período.
type SaleFilters struct {
	SellerID  *int
	StartDate *time.Time
	EndDate   *time.Time
	Status    *SaleStatus
}
