package postgres

import (
	"context"
	"database/sql"

	"printshop/internal/model"
	"printshop/internal/repository"
)

// CategoryPostgres is a PostgreSQL implementation of repository.CategoryRepository.
type CategoryPostgres struct {
	db *sql.DB
}

// NewCategoryPostgres creates a new CategoryPostgres repository.
func NewCategoryPostgres(db *sql.DB) *CategoryPostgres {
	return &CategoryPostgres{db: db}
}

var _ repository.CategoryRepository = (*CategoryPostgres)(nil)

const categoryColumns = "id, name, slug, description, created_at"

func scanCategory(row interface{ Scan(dest ...any) error }) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category row and returns the stored record.
func (r *CategoryPostgres) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	const q = `
		INSERT INTO categories (id, name, slug, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + categoryColumns
	row := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Slug, c.Description, c.CreatedAt)
	return scanCategory(row)
}

// FindByID fetches a single category by its ID.
func (r *CategoryPostgres) FindByID(ctx context.Context, id string) (*model.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return scanCategory(r.db.QueryRowContext(ctx, q, id))
}

// List returns all categories ordered by name.
func (r *CategoryPostgres) List(ctx context.Context) ([]model.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Update writes the mutable columns of a category.
func (r *CategoryPostgres) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	const q = `
		UPDATE categories
		SET name = $2, slug = $3, description = $4
		WHERE id = $1
		RETURNING ` + categoryColumns
	row := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Slug, c.Description)
	return scanCategory(row)
}

// Delete removes a category by ID. It does not return an error if the row does not exist.
func (r *CategoryPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM categories WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
