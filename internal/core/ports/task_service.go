package ports

import (
	"context"

	"github.com/taskquest/task-manager/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task on behalf of
// an authenticated user.
type CreateTaskInput struct {
	UserID      int64
	Title       string
	Description string
	Status      domain.TaskStatus
}

// UpdateTaskFields is a partial update: nil fields are left untouched.
type UpdateTaskFields struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskService defines use-case operations for tasks. The user id always
// comes from the authenticated request context, never from the payload.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, userID int64) ([]domain.Task, error)
	Get(ctx context.Context, id, userID int64) (*domain.Task, error)
	Update(ctx context.Context, id, userID int64, fields UpdateTaskFields) (*domain.Task, error)
	Delete(ctx context.Context, id, userID int64) error
}
