package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/dfcastro/commission-tracker-api/infrastructure/database/postgres"
	"github.com/dfcastro/commission-tracker-api/internal/domain"
)

const commissionReportsTable = "commission_reports"

// CommissionReportRepository guarda os snapshots mensais de fechamento.
// O relatório em si vai serializado em JSONB, no mesmo espírito do cache
// de métricas: a leitura quente não recalcula mês fechado.
type CommissionReportRepository interface {
	SaveOrUpdate(entry *domain.CommissionReportEntry) error
	GetBySellerAndPeriod(sellerID, month, year int) (*domain.CommissionReportEntry, error)
	ListByPeriod(month, year int) ([]*domain.CommissionReportEntry, error)
}

type commissionReportRepository struct {
	conn *postgres.Connection
}

func NewCommissionReportRepository(conn *postgres.Connection) CommissionReportRepository {
	return &commissionReportRepository{
		conn: conn,
	}
}

func (r *commissionReportRepository) SaveOrUpdate(entry *domain.CommissionReportEntry) error {
	reportJSON, err := json.Marshal(entry.Report)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar relatório para JSON")
	}

	query, args, err := squirrel.
		Insert(commissionReportsTable).
		Columns("seller_id", "month", "year", "report").
		Values(entry.SellerID, entry.Month, entry.Year, reportJSON).
		Suffix(`
			ON CONFLICT (seller_id, month, year) DO UPDATE SET
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao gravar snapshot de comissão")
	}

	return nil
}

func (r *commissionReportRepository) GetBySellerAndPeriod(sellerID, month, year int) (*domain.CommissionReportEntry, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "month", "year", "report", "created_at", "updated_at").
		From(commissionReportsTable).
		Where(squirrel.Eq{"seller_id": sellerID, "month": month, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := scanReportEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear snapshot")
	}

	return entry, nil
}

func (r *commissionReportRepository) ListByPeriod(month, year int) ([]*domain.CommissionReportEntry, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "month", "year", "report", "created_at", "updated_at").
		From(commissionReportsTable).
		Where(squirrel.Eq{"month": month, "year": year}).
		OrderBy("seller_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar snapshots")
	}
	defer rows.Close()

	entries := make([]*domain.CommissionReportEntry, 0)
	for rows.Next() {
		entry, err := scanReportEntry(rows.Scan)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear snapshots")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return entries, nil
}

func scanReportEntry(scan func(dest ...interface{}) error) (*domain.CommissionReportEntry, error) {
	entry := &domain.CommissionReportEntry{}
	var reportJSON []byte

	err := scan(
		&entry.ID,
		&entry.SellerID,
		&entry.Month,
		&entry.Year,
		&reportJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reportJSON != nil {
		report := &domain.SellerReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar JSON do relatório")
		}
		entry.Report = report
	}

	return entry, nil
}
