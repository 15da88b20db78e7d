package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/blitzhq/taskboard/internal/domain/apperr"
	"github.com/blitzhq/taskboard/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// appErrStatus resolves a typed domain failure to its HTTP status and
// message. ok is false for untyped errors.
func appErrStatus(err error) (status int, msg string, ok bool) {
	var aerr *apperr.Error
	if !errors.As(err, &aerr) {
		return 0, "", false
	}

	switch aerr.Kind {
	case apperr.KindInvalidRequest:
		return http.StatusUnprocessableEntity, aerr.Message, true
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized, aerr.Message, true
	case apperr.KindNotFound:
		return http.StatusNotFound, aerr.Message, true
	}

	return 0, "", false
}

// RegisterRequest is the JSON body for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest is the JSON body for task creation.
type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// EditTaskRequest is the JSON body for a task status edit.
type EditTaskRequest struct {
	Status string `json:"status"`
}

// UserResponse is the JSON representation of a user. Password material is
// never part of it.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// TokenResponse carries the signed bearer credential issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// OwnerResponse identifies the owner recorded on a task at creation time.
type OwnerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Owner       OwnerResponse `json:"owner"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toUserResponse converts a domain User to its JSON response representation.
func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// toTaskResponse converts a domain Task to its JSON response representation.
func toTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		Owner: OwnerResponse{
			ID:    t.OwnerID,
			Email: t.OwnerEmail,
		},
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
