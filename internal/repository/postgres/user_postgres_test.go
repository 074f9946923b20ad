package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"printshop/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func userRows(u *model.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "created_at", "updated_at"}).
		AddRow(u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.CreatedAt, u.UpdatedAt)
}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	u := &model.User{
		ID:           "test-uuid",
		Email:        "admin@example.com",
		PasswordHash: "$2a$12$hash",
		Name:         "Admin",
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.CreatedAt, u.UpdatedAt).
		WillReturnRows(userRows(u))

	result, err := repo.Create(ctx, u)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, u.Email, result.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		u := &model.User{ID: "test-id", Email: "admin@example.com", Role: model.RoleAdmin}
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("admin@example.com").
			WillReturnRows(userRows(u))

		got, err := repo.FindByEmail(ctx, "admin@example.com")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "test-id", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("missing@example.com").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByEmail(ctx, "missing@example.com")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestUserPostgres_UpdatePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs("test-id", "new-hash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePassword(ctx, "test-id", "new-hash"))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs("missing-id", "new-hash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePassword(ctx, "missing-id", "new-hash"), sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
