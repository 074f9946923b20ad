package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"printshop/internal/model"
	"printshop/internal/repository"
)

// QuotePostgres is a PostgreSQL implementation of repository.QuoteRepository.
// The files column is JSONB holding the accepted upload descriptors.
type QuotePostgres struct {
	db *sql.DB
}

// NewQuotePostgres creates a new QuotePostgres repository.
func NewQuotePostgres(db *sql.DB) *QuotePostgres {
	return &QuotePostgres{db: db}
}

var _ repository.QuoteRepository = (*QuotePostgres)(nil)

const quoteColumns = "id, customer_name, customer_email, customer_phone, message, files, status, notes, quoted_price, created_at, updated_at"

func scanQuote(row interface{ Scan(dest ...any) error }) (*model.Quote, error) {
	var (
		q     model.Quote
		files []byte
	)
	if err := row.Scan(
		&q.ID,
		&q.CustomerName,
		&q.CustomerEmail,
		&q.CustomerPhone,
		&q.Message,
		&files,
		&q.Status,
		&q.Notes,
		&q.QuotedPrice,
		&q.CreatedAt,
		&q.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(files, &q.Files); err != nil {
		return nil, fmt.Errorf("decode quote files: %w", err)
	}
	return &q, nil
}

// Create inserts a new quote row and returns the stored record.
func (r *QuotePostgres) Create(ctx context.Context, q *model.Quote) (*model.Quote, error) {
	files, err := json.Marshal(q.Files)
	if err != nil {
		return nil, fmt.Errorf("encode quote files: %w", err)
	}

	const stmt = `
		INSERT INTO quotes (id, customer_name, customer_email, customer_phone, message, files, status, notes, quoted_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + quoteColumns
	row := r.db.QueryRowContext(ctx, stmt,
		q.ID,
		q.CustomerName,
		q.CustomerEmail,
		q.CustomerPhone,
		q.Message,
		files,
		q.Status,
		q.Notes,
		q.QuotedPrice,
		q.CreatedAt,
		q.UpdatedAt,
	)
	return scanQuote(row)
}

// FindByID fetches a single quote by its ID.
func (r *QuotePostgres) FindByID(ctx context.Context, id string) (*model.Quote, error) {
	const q = `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	return scanQuote(r.db.QueryRowContext(ctx, q, id))
}

// List returns quotes newest-first with an optional status filter.
func (r *QuotePostgres) List(ctx context.Context, f repository.QuoteListFilter, pq repository.PageQuery) (*repository.PageResult[model.Quote], error) {
	var (
		total int
		args  []any
		where string
	)
	if f.Status != "" {
		where = " WHERE status = $1"
		args = append(args, f.Status)
	}

	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := "SELECT " + quoteColumns + " FROM quotes" + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Quote]{Items: items, Total: total}, nil
}

// Update writes the mutable admin fields of a quote.
func (r *QuotePostgres) Update(ctx context.Context, q *model.Quote) (*model.Quote, error) {
	const stmt = `
		UPDATE quotes
		SET status = $2, notes = $3, quoted_price = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + quoteColumns
	row := r.db.QueryRowContext(ctx, stmt, q.ID, q.Status, q.Notes, q.QuotedPrice)
	return scanQuote(row)
}
