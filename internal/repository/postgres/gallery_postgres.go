package postgres

import (
	"context"
	"database/sql"

	"printshop/internal/model"
	"printshop/internal/repository"
)

// GalleryPostgres is a PostgreSQL implementation of repository.GalleryRepository.
type GalleryPostgres struct {
	db *sql.DB
}

// NewGalleryPostgres creates a new GalleryPostgres repository.
func NewGalleryPostgres(db *sql.DB) *GalleryPostgres {
	return &GalleryPostgres{db: db}
}

var _ repository.GalleryRepository = (*GalleryPostgres)(nil)

const galleryColumns = "id, title, image_url, caption, visible, created_at"

func scanGalleryImage(row interface{ Scan(dest ...any) error }) (*model.GalleryImage, error) {
	var g model.GalleryImage
	if err := row.Scan(&g.ID, &g.Title, &g.ImageURL, &g.Caption, &g.Visible, &g.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a new gallery image row and returns the stored record.
func (r *GalleryPostgres) Create(ctx context.Context, g *model.GalleryImage) (*model.GalleryImage, error) {
	const q = `
		INSERT INTO gallery_images (id, title, image_url, caption, visible, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + galleryColumns
	row := r.db.QueryRowContext(ctx, q, g.ID, g.Title, g.ImageURL, g.Caption, g.Visible, g.CreatedAt)
	return scanGalleryImage(row)
}

// FindByID fetches a single gallery image by its ID.
func (r *GalleryPostgres) FindByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	const q = `SELECT ` + galleryColumns + ` FROM gallery_images WHERE id = $1`
	return scanGalleryImage(r.db.QueryRowContext(ctx, q, id))
}

// List returns gallery images newest-first, optionally visible ones only.
func (r *GalleryPostgres) List(ctx context.Context, f repository.GalleryListFilter) ([]model.GalleryImage, error) {
	q := `SELECT ` + galleryColumns + ` FROM gallery_images`
	if f.VisibleOnly {
		q += ` WHERE visible = TRUE`
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.GalleryImage, 0)
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *g)
	}
	return items, rows.Err()
}

// Update writes the mutable columns of a gallery image.
func (r *GalleryPostgres) Update(ctx context.Context, g *model.GalleryImage) (*model.GalleryImage, error) {
	const q = `
		UPDATE gallery_images
		SET title = $2, image_url = $3, caption = $4, visible = $5
		WHERE id = $1
		RETURNING ` + galleryColumns
	row := r.db.QueryRowContext(ctx, q, g.ID, g.Title, g.ImageURL, g.Caption, g.Visible)
	return scanGalleryImage(row)
}

// Delete removes a gallery image by ID. It does not return an error if the row does not exist.
func (r *GalleryPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM gallery_images WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
