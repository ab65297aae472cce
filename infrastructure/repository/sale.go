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

const salesTable = "sales"

type SaleRepository interface {
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	UpdateSale(sale *domain.Sale) error
	DeleteSale(saleID int) error
	GetSaleByID(saleID int) (*domain.Sale, error)
	ListSales(filters *domain.SaleFilters) ([]*domain.Sale, error)
	SumGrossAmount(sellerID int, startDate, endDate time.Time) (float64, error)
	GetDistinctSaleDates(sellerID int, startDate, endDate time.Time) ([]time.Time, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	query := squirrel.
		Insert(salesTable).
		Columns("seller_id", "client_name", "client_phone", "gross_amount", "sale_date", "status", "notes").
		Values(
			sale.SellerID,
			sale.ClientName,
			sale.ClientPhone,
			sale.GrossAmount,
			sale.SaleDate.Format(time.DateOnly),
			sale.Status,
			sale.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	err = r.conn.QueryRow(saleSQL, saleArgs...).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return nil, errors.Wrap(err, "erro ao inserir venda")
	}

	return sale, nil
}

func (r *saleRepository) UpdateSale(sale *domain.Sale) error {
	queryBuilder := squirrel.
		Update(salesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sale.ID})

	if sale.ClientName != "" {
		queryBuilder = queryBuilder.Set("client_name", sale.ClientName)
	}

	if sale.ClientPhone != nil && *sale.ClientPhone != "" {
		queryBuilder = queryBuilder.Set("client_phone", sale.ClientPhone)
	}

	if sale.GrossAmount > 0 {
		queryBuilder = queryBuilder.Set("gross_amount", sale.GrossAmount)
	}

	if !sale.SaleDate.IsZero() {
		queryBuilder = queryBuilder.Set("sale_date", sale.SaleDate.Format(time.DateOnly))
	}

	if sale.Status != "" {
		queryBuilder = queryBuilder.Set("status", sale.Status)
	}

	if sale.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", sale.Notes)
	}

	saleSQL, saleArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = r.conn.Exec(saleSQL, saleArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar venda")
	}

	return nil
}

func (r *saleRepository) DeleteSale(saleID int) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir venda")
	}

	return nil
}

func (r *saleRepository) GetSaleByID(saleID int) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "seller_id", "client_name", "client_phone", "gross_amount", "sale_date", "status", "notes", "created_at", "updated_at").
		From(salesTable).
		Where(squirrel.Eq{"id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	row := r.conn.QueryRow(query, args...)

	var sale domain.Sale
	err = row.Scan(
		&sale.ID,
		&sale.SellerID,
		&sale.ClientName,
		&sale.ClientPhone,
		&sale.GrossAmount,
		&sale.SaleDate,
		&sale.Status,
		&sale.Notes,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear venda")
	}

	return &sale, nil
}

func (r *saleRepository) ListSales(filters *domain.SaleFilters) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select("id", "seller_id", "client_name", "client_phone", "gross_amount", "sale_date", "status", "notes", "created_at", "updated_at").
		From(salesTable).
		OrderBy("sale_date DESC, id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.SellerID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"seller_id": *filters.SellerID})
		}
		if filters.StartDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sale_date": filters.StartDate.Format(time.DateOnly)})
		}
		if filters.EndDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"sale_date": filters.EndDate.Format(time.DateOnly)})
		}
		if filters.Status != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *filters.Status})
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar vendas")
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.SellerID,
			&sale.ClientName,
			&sale.ClientPhone,
			&sale.GrossAmount,
			&sale.SaleDate,
			&sale.Status,
			&sale.Notes,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendas")
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return sales, nil
}

// SumGrossAmount soma o valor bruto das vendas não canceladas do vendedor
// no período. A soma fica no banco; o motor de comissão recebe só o total.
func (r *saleRepository) SumGrossAmount(sellerID int, startDate, endDate time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(gross_amount), 0)").
		From(salesTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.NotEq{"status": domain.SaleStatusCanceled}).
		Where(squirrel.GtOrEq{"sale_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sale_date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir consulta")
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, errors.Wrap(err, "erro ao somar vendas")
	}

	return total, nil
}

// GetDistinctSaleDates devolve as datas com ao menos uma venda não
// cancelada; alimenta a contagem de dias zerados do relatório.
func (r *saleRepository) GetDistinctSaleDates(sellerID int, startDate, endDate time.Time) ([]time.Time, error) {
	query, args, err := squirrel.
		Select("DISTINCT sale_date").
		From(salesTable).
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.NotEq{"status": domain.SaleStatusCanceled}).
		Where(squirrel.GtOrEq{"sale_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sale_date": endDate.Format(time.DateOnly)}).
		OrderBy("sale_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar datas de venda")
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear data")
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return dates, nil
}
