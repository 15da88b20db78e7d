// Package application holds the service layer: validation, authorization,
// and orchestration between the driving HTTP adapter and the driven ports.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/blitzhq/taskboard/internal/domain/apperr"
	"github.com/blitzhq/taskboard/internal/domain/model"
	"github.com/blitzhq/taskboard/internal/domain/port/driven"
)

// RegisterInput is the payload for user registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is the payload for login.
type LoginInput struct {
	Email    string
	Password string
}

// UserService orchestrates registration and login. It depends only on port
// interfaces; the admin email is injected so no privileged identity literal
// lives in policy code.
type UserService struct {
	users      driven.UserStore
	codec      driven.TokenCodec
	adminEmail string
}

// NewUserService creates a UserService with the required dependencies.
func NewUserService(users driven.UserStore, codec driven.TokenCodec, adminEmail string) *UserService {
	return &UserService{
		users:      users,
		codec:      codec,
		adminEmail: adminEmail,
	}
}

// Register validates the payload, rejects duplicate emails, and persists a
// new user with a bcrypt password hash. The configured admin email registers
// with the admin role; everyone else is a member. The stored hash never
// appears in the returned user.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if verr := validateRegister(in); verr != nil {
		return nil, verr
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, apperr.Invalid("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := model.RoleMember
	if in.Email == s.adminEmail {
		role = model.RoleAdmin
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index catches a concurrent registration that slipped
		// past the pre-check above.
		if errors.Is(err, driven.ErrEmailTaken) {
			return nil, apperr.Invalid("email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	user.PasswordHash = ""
	return &user, nil
}

// Login validates the payload, checks the stored password, and issues a
// signed credential keyed on the stored user id, the submitted email, and the
// stored role.
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, error) {
	if verr := validateLogin(in); verr != nil {
		return "", verr
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", apperr.Invalid("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return "", apperr.Unauthorized("incorrect password")
	}

	token, err := s.codec.Issue(user.ID, in.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
