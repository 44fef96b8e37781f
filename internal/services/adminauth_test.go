package services

import (
	"errors"
	"testing"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
)

func TestAdminAuthenticate(t *testing.T) {
	t.Parallel()
	auth := NewAdminAuthService(testLogger(), "s3cret")

	token, err := auth.Authenticate("s3cret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if token != AdminToken {
		t.Errorf("expected token %q, got %q", AdminToken, token)
	}
}

func TestAdminAuthenticateRejectsWrongPassword(t *testing.T) {
	t.Parallel()
	auth := NewAdminAuthService(testLogger(), "s3cret")

	for _, password := range []string{"", "wrong", "S3CRET", "s3cret "} {
		if _, err := auth.Authenticate(password); !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("password %q: expected ErrUnauthorized, got %v", password, err)
		}
	}
}
