package ports

import (
	"context"

	"github.com/taskquest/task-manager/internal/core/domain"
)

// AuthRepository defines the interface for user identity persistence.
type AuthRepository interface {
	// FindByEmail performs a case-sensitive exact match on email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
