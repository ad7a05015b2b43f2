package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/atelier-lumen/backend/internal/model"
	"github.com/atelier-lumen/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	adminRepo repository.AdminRepository
}

// NewAuthService creates an AuthService backed by the given repository.
func NewAuthService(adminRepo repository.AdminRepository) AuthService {
	return &authServiceImpl{adminRepo: adminRepo}
}

// Authenticate looks up the account and compares the bcrypt hash. Both the
// unknown-email and wrong-password paths return ErrInvalidCredentials; the
// distinction only goes to the debug log.
func (s *authServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.AdminUser, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Debug("admin login failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		slog.Debug("admin login failed", "reason", "password mismatch", "admin_id", admin.ID)
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}
