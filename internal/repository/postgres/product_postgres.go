package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"printshop/internal/model"
	"printshop/internal/repository"
)

// ProductPostgres is a PostgreSQL implementation of repository.ProductRepository.
// The images column is JSONB holding a list of image URLs.
type ProductPostgres struct {
	db *sql.DB
}

// NewProductPostgres creates a new ProductPostgres repository.
func NewProductPostgres(db *sql.DB) *ProductPostgres {
	return &ProductPostgres{db: db}
}

var _ repository.ProductRepository = (*ProductPostgres)(nil)

const productColumns = "id, name, slug, description, price, stock, images, is_active, category_id, created_at, updated_at"

func scanProduct(row interface{ Scan(dest ...any) error }) (*model.Product, error) {
	var (
		p      model.Product
		images []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.Stock,
		&images,
		&p.IsActive,
		&p.CategoryID,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("decode product images: %w", err)
	}
	return &p, nil
}

// Create inserts a new product row and returns the stored record.
func (r *ProductPostgres) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, fmt.Errorf("encode product images: %w", err)
	}

	const stmt = `
		INSERT INTO products (id, name, slug, description, price, stock, images, is_active, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productColumns
	row := r.db.QueryRowContext(ctx, stmt,
		p.ID,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.Stock,
		images,
		p.IsActive,
		p.CategoryID,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanProduct(row)
}

// FindByID fetches a single product by its ID.
func (r *ProductPostgres) FindByID(ctx context.Context, id string) (*model.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRowContext(ctx, q, id))
}

// List returns products newest-first with optional active/category filters.
func (r *ProductPostgres) List(ctx context.Context, f repository.ProductListFilter, pq repository.PageQuery) (*repository.PageResult[model.Product], error) {
	var (
		args  []any
		where string
	)
	if f.Active != nil {
		args = append(args, *f.Active)
		where += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		where += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if where != "" {
		where = " WHERE" + where[4:]
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := "SELECT " + productColumns + " FROM products" + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Product]{Items: items, Total: total}, nil
}

// Update writes all mutable columns of a product.
func (r *ProductPostgres) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, fmt.Errorf("encode product images: %w", err)
	}

	const stmt = `
		UPDATE products
		SET name = $2, slug = $3, description = $4, price = $5, stock = $6, images = $7, is_active = $8, category_id = $9, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns
	row := r.db.QueryRowContext(ctx, stmt,
		p.ID,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.Stock,
		images,
		p.IsActive,
		p.CategoryID,
	)
	return scanProduct(row)
}

// Delete removes a product by ID. It does not return an error if the row does not exist.
func (r *ProductPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM products WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
