package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/dfcastro/commission-tracker-api/infrastructure/database/postgres"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
)

const outboundMessagesTable = "outbound_messages"

// ErrDuplicateMessage indica que já existe mensagem para a chave de
// idempotência (schedule_id + data). O despachante trata como "ocorrência
// já gerada", não como falha.
var ErrDuplicateMessage = errors.New("mensagem duplicada para a chave de idempotência")

type MessageRepository interface {
	EnqueueTx(tx *sql.Tx, message *domain.OutboundMessage) error
	ListPending(limit int) ([]*domain.OutboundMessage, error)
	MarkSent(messageID int, sentAt time.Time) error
	MarkFailed(messageID int, sendErr string) error
	ListByScheduleID(scheduleID int) ([]*domain.OutboundMessage, error)
}

type messageRepository struct {
	conn *postgres.Connection
}

func NewMessageRepository(conn *postgres.Connection) MessageRepository {
	return &messageRepository{
		conn: conn,
	}
}

// EnqueueTx insere a mensagem dentro da transação do disparo. A violação
// da restrição UNIQUE da chave de idempotência vira ErrDuplicateMessage.
func (r *messageRepository) EnqueueTx(tx *sql.Tx, message *domain.OutboundMessage) error {
	query, args, err := squirrel.
		Insert(outboundMessagesTable).
		Columns("schedule_id", "reference", "idempotency_key", "target_phone", "body", "status").
		Values(
			message.ScheduleID,
			message.Reference,
			message.IdempotencyKey,
			message.TargetPhone,
			message.Body,
			domain.MessageStatusPending,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	err = tx.QueryRow(query, args...).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateMessage
		}
		return errors.Wrap(err, "erro ao enfileirar mensagem")
	}

	message.Status = domain.MessageStatusPending
	return nil
}

func (r *messageRepository) ListPending(limit int) ([]*domain.OutboundMessage, error) {
	queryBuilder := squirrel.
		Select("id", "schedule_id", "reference", "idempotency_key", "target_phone", "body", "status", "attempts", "last_error", "sent_at", "created_at", "updated_at").
		From(outboundMessagesTable).
		Where(squirrel.Eq{"status": domain.MessageStatusPending}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	return r.list(query, args)
}

func (r *messageRepository) ListByScheduleID(scheduleID int) ([]*domain.OutboundMessage, error) {
	query, args, err := squirrel.
		Select("id", "schedule_id", "reference", "idempotency_key", "target_phone", "body", "status", "attempts", "last_error", "sent_at", "created_at", "updated_at").
		From(outboundMessagesTable).
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	return r.list(query, args)
}

func (r *messageRepository) list(query string, args []interface{}) ([]*domain.OutboundMessage, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar mensagens")
	}
	defer rows.Close()

	messages := make([]*domain.OutboundMessage, 0)
	for rows.Next() {
		var message domain.OutboundMessage
		if err := rows.Scan(
			&message.ID,
			&message.ScheduleID,
			&message.Reference,
			&message.IdempotencyKey,
			&message.TargetPhone,
			&message.Body,
			&message.Status,
			&message.Attempts,
			&message.LastError,
			&message.SentAt,
			&message.CreatedAt,
			&message.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear mensagem")
		}
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return messages, nil
}

func (r *messageRepository) MarkSent(messageID int, sentAt time.Time) error {
	query, args, err := squirrel.
		Update(outboundMessagesTable).
		Set("status", domain.MessageStatusSent).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("sent_at", sentAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": messageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao marcar mensagem como enviada")
	}

	return nil
}

func (r *messageRepository) MarkFailed(messageID int, sendErr string) error {
	query, args, err := squirrel.
		Update(outboundMessagesTable).
		Set("status", domain.MessageStatusFailed).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("last_error", sendErr).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": messageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao marcar mensagem como falha")
	}

	return nil
}
