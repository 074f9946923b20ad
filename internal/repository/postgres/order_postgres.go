package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"printshop/internal/model"
	"printshop/internal/repository"
)

// OrderPostgres is a PostgreSQL implementation of repository.OrderRepository.
// The items column is JSONB holding the order lines.
type OrderPostgres struct {
	db *sql.DB
}

// NewOrderPostgres creates a new OrderPostgres repository.
func NewOrderPostgres(db *sql.DB) *OrderPostgres {
	return &OrderPostgres{db: db}
}

var _ repository.OrderRepository = (*OrderPostgres)(nil)

const orderColumns = "id, customer_name, customer_email, items, total, status, notes, created_at, updated_at"

func scanOrder(row interface{ Scan(dest ...any) error }) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	if err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerEmail,
		&items,
		&o.Total,
		&o.Status,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &o, nil
}

// FindByID fetches a single order by its ID.
func (r *OrderPostgres) FindByID(ctx context.Context, id string) (*model.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return scanOrder(r.db.QueryRowContext(ctx, q, id))
}

// List returns orders newest-first with an optional status filter.
func (r *OrderPostgres) List(ctx context.Context, f repository.OrderListFilter, pq repository.PageQuery) (*repository.PageResult[model.Order], error) {
	var (
		args  []any
		where string
	)
	if f.Status != "" {
		where = " WHERE status = $1"
		args = append(args, f.Status)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := "SELECT " + orderColumns + " FROM orders" + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Order]{Items: items, Total: total}, nil
}

// Update writes status and notes for an existing order.
func (r *OrderPostgres) Update(ctx context.Context, o *model.Order) (*model.Order, error) {
	const q = `
		UPDATE orders
		SET status = $2, notes = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns
	row := r.db.QueryRowContext(ctx, q, o.ID, o.Status, o.Notes)
	return scanOrder(row)
}
