package driven

import (
	"context"
	"errors"

	"github.com/blitzhq/taskboard/internal/domain/model"
)

// ErrEmailTaken indicates a user with the same email already exists.
var ErrEmailTaken = errors.New("email already taken")

// UserStore defines the driven port for user persistence.
// Create returns ErrEmailTaken when the email is already registered.
// GetByEmail and GetByID return nil, nil when no user matches.
type UserStore interface {
	Create(ctx context.Context, user model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}
