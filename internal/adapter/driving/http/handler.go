// Package httphandler is the HTTP driving adapter that serves the REST API.
package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/blitzhq/taskboard/internal/application"
)

// Handler holds the application services the REST API is built on.
type Handler struct {
	userSvc *application.UserService
	taskSvc *application.TaskService
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(userSvc *application.UserService, taskSvc *application.TaskService, logger *slog.Logger) *Handler {
	return &Handler{
		userSvc: userSvc,
		taskSvc: taskSvc,
		logger:  logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware. Task routes additionally require a
// verified bearer credential.
func NewServeMux(h *Handler, verifier TokenVerifier, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/users", h.Register)
	mux.HandleFunc("POST /api/v1/login", h.Login)
	mux.Handle("POST /api/v1/tasks", authMiddleware(verifier, http.HandlerFunc(h.CreateTask)))
	mux.Handle("GET /api/v1/tasks", authMiddleware(verifier, http.HandlerFunc(h.ListTasks)))
	mux.Handle("PUT /api/v1/tasks/{id}", authMiddleware(verifier, http.HandlerFunc(h.UpdateTask)))
	mux.Handle("DELETE /api/v1/tasks/{id}", authMiddleware(verifier, http.HandlerFunc(h.DeleteTask)))
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Register creates a new user account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, err := h.userSvc.Register(r.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(*user))
}

// Login verifies credentials and returns a signed bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	token, err := h.userSvc.Login(r.Context(), application.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// CreateTask creates a task owned by the caller.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	task, err := h.taskSvc.Create(r.Context(), application.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}, caller)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(*task))
}

// ListTasks returns the caller's tasks; admin callers see every task.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tasks, err := h.taskSvc.List(r.Context(), caller)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, toTaskResponse(task))
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateTask applies a status edit to a task the caller may modify.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req EditTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	task, err := h.taskSvc.UpdateStatus(r.Context(), r.PathValue("id"), application.EditTaskInput{
		Status: req.Status,
	}, caller)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

// DeleteTask removes a task the caller may modify and returns its prior
// snapshot.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	task, err := h.taskSvc.Delete(r.Context(), r.PathValue("id"), caller)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// writeFailure maps a service failure to its transport response. Typed
// domain failures carry their own status; anything else is a 500.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	if status, msg, ok := appErrStatus(err); ok {
		writeError(w, status, msg)
		return
	}

	h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
