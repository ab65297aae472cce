package domain

import "time"

// MessageStatus acompanha a fila de mensagens de saída.
type MessageStatus string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusSent    MessageStatus = "sent"
	MessageStatusFailed  MessageStatus = "failed"
)

// OutboundMessage é uma mensagem enfileirada para envio via WhatsApp.
// IdempotencyKey é derivada de (schedule_id, data da ocorrência) e tem
// restrição UNIQUE no banco: uma ocorrência nunca gera duas mensagens,
// mesmo que o despachante repita o ciclo após uma falha parcial.
// Reference é um código curto usado em logs para correlacionar a
// mensagem com o gateway de envio.
type OutboundMessage struct {
	ID             int           `json:"id"`
	ScheduleID     *int          `json:"schedule_id"`
	Reference      string        `json:"reference"`
	IdempotencyKey string        `json:"idempotency_key"`
	TargetPhone    string        `json:"target_phone"`
	Body           string        `json:"body"`
	Status         MessageStatus `json:"status"`
	Attempts       int           `json:"attempts"`
	LastError      *string       `json:"last_error"`
	SentAt         *time.Time    `json:"sent_at"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
