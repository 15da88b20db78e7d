package driven

import (
	"context"
	"errors"

	"github.com/blitzhq/taskboard/internal/domain/model"
)

// Sentinel errors returned by TaskStore implementations.
var (
	// ErrTaskNotFound indicates the requested task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskNameTaken indicates the owner already has a task with that name.
	ErrTaskNameTaken = errors.New("task name taken")
)

// TaskStore defines the driven port for task persistence.
// Create returns ErrTaskNameTaken when the owner already has a task with the
// same name. GetByID and GetByNameAndOwner return nil, nil when no task
// matches. UpdateStatus and Delete return ErrTaskNotFound when the id does
// not exist.
type TaskStore interface {
	Create(ctx context.Context, task model.Task) error
	GetByID(ctx context.Context, id string) (*model.Task, error)
	GetByNameAndOwner(ctx context.Context, name, ownerID string) (*model.Task, error)
	ListAll(ctx context.Context) ([]model.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error)
	UpdateStatus(ctx context.Context, id string, status model.TaskStatus) error
	Delete(ctx context.Context, id string) error
}
