package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blitzhq/taskboard/internal/domain/model"
	"github.com/blitzhq/taskboard/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TaskStore = (*TaskRepo)(nil)

// TaskRepo is the SQLite implementation of the TaskStore port interface.
type TaskRepo struct {
	db *DB
}

// NewTaskRepo creates a new TaskRepo backed by the given DB.
func NewTaskRepo(db *DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskColumns = `id, name, description, status, owner_id, owner_email, created_at, updated_at`

// Create inserts a new task. Returns ErrTaskNameTaken if the owner already
// has a task with the same name.
func (r *TaskRepo) Create(ctx context.Context, task model.Task) error {
	const query = `INSERT INTO tasks (id, name, description, status, owner_id, owner_email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	createdAt := task.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := task.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := r.db.Writer.ExecContext(ctx, query,
		task.ID, task.Name, task.Description, string(task.Status),
		task.OwnerID, task.OwnerEmail,
		createdAt.Format(time.RFC3339), updatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("create task %s: %w", task.Name, driven.ErrTaskNameTaken)
		}
		return fmt.Errorf("create task %s: %w", task.Name, err)
	}

	return nil
}

// GetByID retrieves a task by id. Returns nil, nil if no task matches.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}

	return task, nil
}

// GetByNameAndOwner retrieves a task by name within a single owner's tasks.
// Returns nil, nil if no task matches. Backs the duplicate-name check on
// creation.
func (r *TaskRepo) GetByNameAndOwner(ctx context.Context, name, ownerID string) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE name = ? AND owner_id = ?`

	task, err := scanTask(r.db.Reader.QueryRowContext(ctx, query, name, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %s for owner %s: %w", name, ownerID, err)
	}

	return task, nil
}

// ListAll returns every task across all owners, ordered by creation time.
func (r *TaskRepo) ListAll(ctx context.Context) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`

	return r.queryTasks(ctx, query)
}

// ListByOwner returns the tasks owned by ownerID, ordered by creation time.
func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ? ORDER BY created_at, id`

	return r.queryTasks(ctx, query, ownerID)
}

// UpdateStatus sets the status of the task with the given id. Returns
// ErrTaskNotFound if the id does not exist.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id string, status model.TaskStatus) error {
	const query = `UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update task %s: %w", id, driven.ErrTaskNotFound)
	}

	return nil
}

// Delete removes the task with the given id. Returns ErrTaskNotFound if the
// id does not exist.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete task %s: %w", id, driven.ErrTaskNotFound)
	}

	return nil
}

func (r *TaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*model.Task, error) {
	var task model.Task
	var status, createdAt, updatedAt string

	err := s.Scan(&task.ID, &task.Name, &task.Description, &status,
		&task.OwnerID, &task.OwnerEmail, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	task.Status = model.TaskStatus(status)

	task.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	task.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &task, nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
