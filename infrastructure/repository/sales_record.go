package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	salesRecordsTable = "penjualan_produk p"
)

var salesRecordColumns = []string{
	"p." + domain.ColumnDate,
	"p." + domain.ColumnRegion,
	"p." + domain.ColumnProduct,
	"p." + domain.ColumnUnitsSold,
	"p." + domain.ColumnRevenue,
}

type SalesRecordRepository interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
	Name() string
}

type salesRecordRepository struct {
	conn postgres.Queryer
}

func NewSalesRecordRepository(conn postgres.Queryer) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

func (r *salesRecordRepository) Name() string {
	return "postgres:penjualan_produk"
}

func (r *salesRecordRepository) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := listSalesRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := []domain.SalesRecord{}
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar registros de venda: %w", err)
	}

	return records, nil
}

func listSalesRecordsQuery() (string, []interface{}, error) {
	return squirrel.
		Select(salesRecordColumns...).
		From(salesRecordsTable).
		OrderBy("p." + domain.ColumnDate + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanSalesRecord(rows *sql.Rows) (domain.SalesRecord, error) {
	var (
		date      time.Time
		region    sql.NullString
		product   sql.NullString
		unitsSold sql.NullFloat64
		revenue   sql.NullFloat64
	)

	if err := rows.Scan(&date, &region, &product, &unitsSold, &revenue); err != nil {
		return domain.SalesRecord{}, err
	}

	return domain.SalesRecord{
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Region:    region.String,
		Product:   product.String,
		UnitsSold: nullableFloat(unitsSold),
		Revenue:   nullableFloat(revenue),
	}, nil
}

func nullableFloat(value sql.NullFloat64) float64 {
	if !value.Valid {
		return math.NaN()
	}
	return value.Float64
}
