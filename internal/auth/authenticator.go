package auth

import (
	"log/slog"

	"github.com/frankfium/personal-site/internal/config"
	"github.com/frankfium/personal-site/internal/domain"
)

// Authenticator validates login credentials against the configured admin
// user. The credential pair is injected at startup and never mutated.
type Authenticator struct {
	username string
	password string
}

// NewAuthenticator creates an authenticator for the configured admin user
func NewAuthenticator(admin config.AdminConfig) *Authenticator {
	return &Authenticator{
		username: admin.Username,
		password: admin.Password,
	}
}

// Login checks the supplied credentials. It returns the admin identity on an
// exact match of both fields, domain.ErrAuthNotConfigured when either
// configured value is empty, and domain.ErrUnauthorized on any mismatch.
// Repeated calls with valid credentials are idempotent.
func (a *Authenticator) Login(username, password string) (domain.Identity, error) {
	if a.username == "" || a.password == "" {
		slog.Error("login attempted but admin credentials are not configured")
		return domain.Identity{}, domain.ErrAuthNotConfigured
	}

	// A single comparison outcome for both fields avoids user enumeration
	if username != a.username || password != a.password {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	return domain.Identity{Username: username}, nil
}
