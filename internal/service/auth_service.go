package service

import (
	"context"
	"errors"

	"github.com/atelier-lumen/backend/internal/model"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies admin credentials.
type AuthService interface {
	// Authenticate returns the admin account when email+password match,
	// ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, email, password string) (*model.AdminUser, error)
}
