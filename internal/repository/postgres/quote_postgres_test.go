package postgres

import (
	"context"
	"testing"
	"time"

	"printshop/internal/model"
	"printshop/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func quoteRows(q *model.Quote, files string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_name", "customer_email", "customer_phone", "message", "files", "status", "notes", "quoted_price", "created_at", "updated_at"}).
		AddRow(q.ID, q.CustomerName, q.CustomerEmail, q.CustomerPhone, q.Message, []byte(files), q.Status, q.Notes, q.QuotedPrice, q.CreatedAt, q.UpdatedAt)
}

func TestQuotePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewQuotePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	q := &model.Quote{
		ID:            "test-uuid",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Files: []model.QuoteFile{
			{Name: "part.stl", URL: "/uploads/quotes/123_abc_part.stl", Size: 42},
		},
		Status:    model.QuoteStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	files := `[{"name":"part.stl","url":"/uploads/quotes/123_abc_part.stl","size":42}]`

	mock.ExpectQuery("INSERT INTO quotes").
		WithArgs(q.ID, q.CustomerName, q.CustomerEmail, q.CustomerPhone, q.Message,
			[]byte(files), q.Status, q.Notes, q.QuotedPrice, q.CreatedAt, q.UpdatedAt).
		WillReturnRows(quoteRows(q, files))

	result, err := repo.Create(ctx, q)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result.Files, 1)
	assert.Equal(t, "part.stl", result.Files[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuotePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewQuotePostgres(db)
	ctx := context.Background()

	t.Run("unfiltered", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM quotes").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		q := &model.Quote{ID: "test-id", Status: model.QuoteStatusPending, CreatedAt: time.Now()}
		mock.ExpectQuery("SELECT (.+) FROM quotes ORDER BY").
			WithArgs(20, 0).
			WillReturnRows(quoteRows(q, "[]"))

		res, err := repo.List(ctx, repository.QuoteListFilter{}, repository.PageQuery{Limit: 20, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("status filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM quotes WHERE status").
			WithArgs("quoted").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM quotes WHERE status").
			WithArgs("quoted", 20, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name", "customer_email", "customer_phone", "message", "files", "status", "notes", "quoted_price", "created_at", "updated_at"}))

		res, err := repo.List(ctx, repository.QuoteListFilter{Status: "quoted"}, repository.PageQuery{Limit: 20, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuotePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewQuotePostgres(db)
	ctx := context.Background()

	price := 49.99
	q := &model.Quote{
		ID:          "test-id",
		Status:      model.QuoteStatusQuoted,
		Notes:       "PLA, 0.2mm layers",
		QuotedPrice: &price,
	}

	mock.ExpectQuery("UPDATE quotes").
		WithArgs(q.ID, q.Status, q.Notes, q.QuotedPrice).
		WillReturnRows(quoteRows(q, "[]"))

	result, err := repo.Update(ctx, q)

	assert.NoError(t, err)
	assert.Equal(t, model.QuoteStatusQuoted, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
