package ports

import (
	"context"

	"github.com/taskquest/task-manager/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every query
// filters by both task id and owner id in a single predicate, so a task
// belonging to another user is indistinguishable from a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// FindByUserID returns the owner's tasks ordered newest-created-first.
	FindByUserID(ctx context.Context, userID int64) ([]domain.Task, error)
	FindByID(ctx context.Context, id, userID int64) (*domain.Task, error)
	Update(ctx context.Context, id, userID int64, fields UpdateTaskFields) (*domain.Task, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id, userID int64) (bool, error)
}
