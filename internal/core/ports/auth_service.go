package ports

import (
	"context"

	"github.com/taskquest/task-manager/internal/core/domain"
)

// AuthService registers and authenticates users and owns the token
// lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	IssueToken(userID int64) (string, error)
	TokenVerifier
}

// TokenVerifier resolves a bearer token to the user id it was issued for.
// Verification is a local computation: no repository access.
type TokenVerifier interface {
	VerifyToken(token string) (int64, error)
}
