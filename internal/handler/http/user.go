package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobly-app/jobly-backend-go/internal/domain/user"
	"github.com/jobly-app/jobly-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// List implements UserHandler.
func (u *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := u.userService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"users": users})
}

// Create implements UserHandler.
func (u *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := u.userService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create user", "username", req.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", map[string]interface{}{"user": created})
}

// Get implements UserHandler.
func (u *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	found, err := u.userService.Get(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"user": found})
}

// Update implements UserHandler.
func (u *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := u.userService.Update(r.Context(), username, req)
	if err != nil {
		slog.Error("Failed to update user", "username", username, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"user": updated})
}

// Delete implements UserHandler.
func (u *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := u.userService.Delete(r.Context(), username); err != nil {
		slog.Error("Failed to delete user", "username", username, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"deleted": username})
}
