package services

import (
	"crypto/subtle"
	"fmt"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
)

// AdminToken is the opaque value the admin panel stores after a
// successful login. There is no session or expiry behind it; the admin
// gate is a single shared secret, not a security-grade auth system.
const AdminToken = "admin-authenticated"

type AdminAuthService interface {
	Authenticate(password string) (string, error)
}

type adminAuthService struct {
	log      *logger.Logger
	password string
}

func NewAdminAuthService(log *logger.Logger, password string) AdminAuthService {
	return &adminAuthService{
		log:      log.With("service", "AdminAuthService"),
		password: password,
	}
}

func (as *adminAuthService) Authenticate(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(as.password)) != 1 {
		as.log.Warn("Admin authentication rejected")
		return "", fmt.Errorf("invalid password: %w", apperr.ErrUnauthorized)
	}
	as.log.Info("Admin authenticated")
	return AdminToken, nil
}
