package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blitzhq/taskboard/internal/domain/apperr"
	"github.com/blitzhq/taskboard/internal/domain/model"
	"github.com/blitzhq/taskboard/internal/domain/port/driven"
)

// CreateTaskInput is the payload for task creation.
type CreateTaskInput struct {
	Name        string
	Description string
	Status      string
}

// EditTaskInput is the payload for a task status edit.
type EditTaskInput struct {
	Status string
}

// TaskService orchestrates task creation, listing, status edits, and
// deletion, consulting the owner-action policy against freshly fetched
// records on every mutation.
type TaskService struct {
	tasks driven.TaskStore
}

// NewTaskService creates a TaskService backed by the given store.
func NewTaskService(tasks driven.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create validates the payload and the status enum, rejects a duplicate name
// within the caller's own tasks, and persists the task with the caller as
// owner.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput, caller model.Identity) (*model.Task, error) {
	if verr := validateTaskCreate(in); verr != nil {
		return nil, verr
	}

	if !model.ValidTaskStatus(in.Status) {
		return nil, apperr.Invalid("invalid task status")
	}

	existing, err := s.tasks.GetByNameAndOwner(ctx, in.Name, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("check task name: %w", err)
	}
	if existing != nil {
		return nil, apperr.Invalid("task name taken")
	}

	now := time.Now().UTC()
	task := model.Task{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Status:      model.TaskStatus(in.Status),
		OwnerID:     caller.UserID,
		OwnerEmail:  caller.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, driven.ErrTaskNameTaken) {
			return nil, apperr.Invalid("task name taken")
		}
		return nil, fmt.Errorf("create task: %w", err)
	}

	return &task, nil
}

// List returns every task for an admin caller and only the caller's own
// tasks otherwise. The scope changes which query is issued; records are
// never filtered after the fact.
func (s *TaskService) List(ctx context.Context, caller model.Identity) ([]model.Task, error) {
	if caller.IsAdmin() {
		return s.tasks.ListAll(ctx)
	}
	return s.tasks.ListByOwner(ctx, caller.UserID)
}

// UpdateStatus validates the payload, fetches the task, authorizes the
// caller against the recorded owner, applies the status mutation, and
// returns the merged record.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, in EditTaskInput, caller model.Identity) (*model.Task, error) {
	if verr := validateTaskEdit(in); verr != nil {
		return nil, verr
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return nil, apperr.NotFound("task not found")
	}

	if aerr := authorizeOwnerAction(task.OwnerID, caller); aerr != nil {
		return nil, aerr
	}

	if err := s.tasks.UpdateStatus(ctx, id, model.TaskStatus(in.Status)); err != nil {
		if errors.Is(err, driven.ErrTaskNotFound) {
			return nil, apperr.NotFound("task not found")
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	task.Status = model.TaskStatus(in.Status)
	task.UpdatedAt = time.Now().UTC()
	return task, nil
}

// Delete fetches the task, authorizes the caller against the recorded owner,
// deletes it, and returns the prior snapshot.
func (s *TaskService) Delete(ctx context.Context, id string, caller model.Identity) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return nil, apperr.NotFound("task not found")
	}

	if aerr := authorizeOwnerAction(task.OwnerID, caller); aerr != nil {
		return nil, aerr
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, driven.ErrTaskNotFound) {
			return nil, apperr.NotFound("task not found")
		}
		return nil, fmt.Errorf("delete task: %w", err)
	}

	return task, nil
}
