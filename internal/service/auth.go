package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"printshop/internal/config"
	"printshop/internal/model"
	"printshop/internal/repository"
	"printshop/internal/session"
)

// bcryptCost matches the cost used for stored admin password hashes.
const bcryptCost = 12

// LoginResult carries the minted session token and its expiry.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

// AuthService defines the admin authentication use cases.
type AuthService interface {
	// Login verifies credentials and mints a signed session token.
	// Unknown email and wrong password return the same ErrInvalidCredentials;
	// a non-admin principal returns ErrForbidden; a missing session secret
	// returns ErrNotConfigured.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// ChangePassword rotates the password of the authenticated admin after
	// verifying the current one.
	ChangePassword(ctx context.Context, userID, current, next, confirm string) error
}

type authService struct {
	users repository.UserRepository
	cfg   config.SessionConfig
	now   func() time.Time
}

// NewAuthService constructs an AuthService backed by the user repository.
func NewAuthService(users repository.UserRepository, cfg config.SessionConfig) AuthService {
	return &authService{users: users, cfg: cfg, now: time.Now}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if s.cfg.Secret == "" {
		return nil, ErrNotConfigured
	}

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, Validationf("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Password is proven before the role is inspected so probing a
	// non-admin email without its password looks like any bad credential.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	exp := s.now().Add(time.Duration(s.cfg.TTLDays) * 24 * time.Hour)
	return &LoginResult{
		Token:     session.NewToken(user.ID, s.cfg.Secret, exp),
		ExpiresAt: exp,
		User:      user,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID, current, next, confirm string) error {
	if userID == "" {
		return ErrIDRequired
	}
	if current == "" {
		return Validationf("missing current password")
	}
	if next == "" {
		return Validationf("missing new password")
	}
	if len(next) < 10 {
		return Validationf("new password must be at least 10 characters")
	}
	if next != confirm {
		return Validationf("new passwords do not match")
	}
	if next == current {
		return Validationf("new password must be different from current password")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidCredentials
		}
		return err
	}
	if user.Role != model.RoleAdmin {
		return ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, string(hash))
}
