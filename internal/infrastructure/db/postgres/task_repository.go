package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskquest/task-manager/internal/core/domain"
	"github.com/taskquest/task-manager/internal/core/ports"
)

// TaskRepository persists tasks in the tasks table. Every lookup and
// mutation filters by id AND user_id in one predicate, so a row owned by
// another user is indistinguishable from a missing row — there is no
// separate existence check to race against.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = "id, title, description, status, user_id, created_at, updated_at"

func scanTask(row interface{ Scan(...any) error }) (*domain.Task, error) {
	var t domain.Task
	var description sql.NullString
	err := row.Scan(&t.ID, &t.Title, &description, &t.Status, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Description = description.String
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `INSERT INTO tasks (title, description, status, user_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING ` + taskColumns

	created, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.Title, nullable(task.Description), task.Status, task.UserID))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return created, nil
}

func (r *TaskRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + `
	          FROM tasks
	          WHERE user_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id, userID int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + `
	          FROM tasks
	          WHERE id = $1 AND user_id = $2`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

// Update applies only the provided fields via COALESCE and refreshes
// updated_at in the same statement.
func (r *TaskRepository) Update(ctx context.Context, id, userID int64, fields ports.UpdateTaskFields) (*domain.Task, error) {
	query := `UPDATE tasks
	          SET title       = COALESCE($1, title),
	              description = COALESCE($2, description),
	              status      = COALESCE($3, status),
	              updated_at  = CURRENT_TIMESTAMP
	          WHERE id = $4 AND user_id = $5
	          RETURNING ` + taskColumns

	var status *string
	if fields.Status != nil {
		s := string(*fields.Status)
		status = &s
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		fields.Title, fields.Description, status, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return affected > 0, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
