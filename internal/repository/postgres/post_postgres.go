package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"printshop/internal/model"
	"printshop/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

const postColumns = "id, title, slug, excerpt, content, cover_url, published, created_at, updated_at"

func scanPost(row interface{ Scan(dest ...any) error }) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.CoverURL,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post row and returns the stored record.
func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (id, title, slug, excerpt, content, cover_url, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + postColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.CoverURL,
		p.Published,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanPost(row)
}

// FindByID fetches a single post by its ID.
func (r *PostPostgres) FindByID(ctx context.Context, id string) (*model.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return scanPost(r.db.QueryRowContext(ctx, q, id))
}

// FindBySlug fetches a single post by its slug.
func (r *PostPostgres) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`
	return scanPost(r.db.QueryRowContext(ctx, q, slug))
}

// List returns posts newest-first, optionally restricted to published ones.
func (r *PostPostgres) List(ctx context.Context, f repository.PostListFilter, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	var (
		args  []any
		where string
	)
	if f.PublishedOnly {
		where = " WHERE published = TRUE"
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts"+where).Scan(&total); err != nil {
		return nil, err
	}

	qList := "SELECT " + postColumns + " FROM posts" + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Post]{Items: items, Total: total}, nil
}

// Update writes all mutable columns of a post.
func (r *PostPostgres) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		UPDATE posts
		SET title = $2, slug = $3, excerpt = $4, content = $5, cover_url = $6, published = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + postColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Title,
		p.Slug,
		p.Excerpt,
		p.Content,
		p.CoverURL,
		p.Published,
	)
	return scanPost(row)
}

// Delete removes a post by ID. It does not return an error if the row does not exist.
func (r *PostPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM posts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
