package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"printshop/internal/config"
	"printshop/internal/model"
	repoMocks "printshop/internal/repository/mocks"
	"printshop/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hashPassword(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := config.SessionConfig{Secret: "test-secret", TTLDays: 7}
	adminHash := hashPassword(t, "correct horse battery")

	tests := []struct {
		name       string
		secret     string
		email      string
		password   string
		setupMocks func(mRepo *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:     "happy path",
			secret:   cfg.Secret,
			email:    "admin@example.com",
			password: "correct horse battery",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "admin@example.com").Return(&model.User{
					ID:           "user-1",
					Email:        "admin@example.com",
					PasswordHash: adminHash,
					Role:         model.RoleAdmin,
				}, nil)
			},
		},
		{
			name:    "missing secret fails closed",
			secret:  "",
			email:   "admin@example.com",
			wantErr: ErrNotConfigured,
		},
		{
			name:     "unknown email",
			secret:   cfg.Secret,
			email:    "nobody@example.com",
			password: "whatever",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			secret:   cfg.Secret,
			email:    "admin@example.com",
			password: "wrong",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "admin@example.com").Return(&model.User{
					ID:           "user-1",
					Email:        "admin@example.com",
					PasswordHash: adminHash,
					Role:         model.RoleAdmin,
				}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "non-admin role",
			secret:   cfg.Secret,
			email:    "user@example.com",
			password: "correct horse battery",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "user@example.com").Return(&model.User{
					ID:           "user-2",
					Email:        "user@example.com",
					PasswordHash: adminHash,
					Role:         "CUSTOMER",
				}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			// The role gate must not reveal that a non-admin account exists:
			// without its password the answer stays a plain credential error.
			name:     "non-admin role with wrong password",
			secret:   cfg.Secret,
			email:    "user@example.com",
			password: "guess",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByEmail", ctx, "user@example.com").Return(&model.User{
					ID:           "user-2",
					Email:        "user@example.com",
					PasswordHash: adminHash,
					Role:         "CUSTOMER",
				}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc := NewAuthService(mRepo, config.SessionConfig{Secret: tt.secret, TTLDays: cfg.TTLDays})

			res, err := svc.Login(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, "user-1", res.User.ID)

				sess, ok := session.Verify(res.Token, tt.secret, time.Now())
				require.True(t, ok)
				assert.Equal(t, "user-1", sess.UserID)
				assert.WithinDuration(t, res.ExpiresAt, sess.ExpiresAt, time.Second)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the client.
func TestAuthService_LoginUniformCredentialError(t *testing.T) {
	ctx := context.Background()
	cfg := config.SessionConfig{Secret: "s", TTLDays: 7}

	mRepo := new(repoMocks.MockUserRepository)
	mRepo.On("FindByEmail", ctx, "missing@example.com").Return(nil, sql.ErrNoRows)
	mRepo.On("FindByEmail", ctx, "admin@example.com").Return(&model.User{
		ID:           "user-1",
		Email:        "admin@example.com",
		PasswordHash: hashPassword(t, "real password!"),
		Role:         model.RoleAdmin,
	}, nil)
	svc := NewAuthService(mRepo, cfg)

	_, errMissing := svc.Login(ctx, "missing@example.com", "guess")
	_, errWrongPw := svc.Login(ctx, "admin@example.com", "guess")

	assert.ErrorIs(t, errMissing, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errMissing.Error(), errWrongPw.Error())
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	cfg := config.SessionConfig{Secret: "s", TTLDays: 7}
	currentHash := hashPassword(t, "old password!!")

	admin := func() *model.User {
		return &model.User{ID: "user-1", Email: "admin@example.com", PasswordHash: currentHash, Role: model.RoleAdmin}
	}

	tests := []struct {
		name       string
		current    string
		next       string
		confirm    string
		setupMocks func(mRepo *repoMocks.MockUserRepository)
		wantErr    error
		wantValMsg string
	}{
		{
			name:    "happy path",
			current: "old password!!",
			next:    "new password!!",
			confirm: "new password!!",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "user-1").Return(admin(), nil)
				mRepo.On("UpdatePassword", ctx, "user-1", mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new password!!")) == nil
				})).Return(nil)
			},
		},
		{
			name:       "missing current",
			next:       "new password!!",
			confirm:    "new password!!",
			wantValMsg: "missing current password",
		},
		{
			name:       "missing new",
			current:    "old password!!",
			wantValMsg: "missing new password",
		},
		{
			name:       "too short",
			current:    "old password!!",
			next:       "shortpw",
			confirm:    "shortpw",
			wantValMsg: "new password must be at least 10 characters",
		},
		{
			name:       "confirmation mismatch",
			current:    "old password!!",
			next:       "new password!!",
			confirm:    "different!!",
			wantValMsg: "new passwords do not match",
		},
		{
			name:       "unchanged password",
			current:    "old password!!",
			next:       "old password!!",
			confirm:    "old password!!",
			wantValMsg: "new password must be different from current password",
		},
		{
			name:    "wrong current password",
			current: "not the old one",
			next:    "new password!!",
			confirm: "new password!!",
			setupMocks: func(mRepo *repoMocks.MockUserRepository) {
				mRepo.On("FindByID", ctx, "user-1").Return(admin(), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc := NewAuthService(mRepo, cfg)

			err := svc.ChangePassword(ctx, "user-1", tt.current, tt.next, tt.confirm)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantValMsg != "":
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Equal(t, tt.wantValMsg, err.Error())
			default:
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
