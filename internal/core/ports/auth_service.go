package ports

import (
	"context"
	"time"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

// TokenRevoker tracks revoked token ids (logout denylist).
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService defines registration, login and session termination.
type AuthService interface {
	// Register creates a member account and returns a signed token plus the
	// created user.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token id until the token would have expired anyway.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Me(ctx context.Context, userID string) (*domain.User, error)
}
