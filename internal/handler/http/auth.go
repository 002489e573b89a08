package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jobly-app/jobly-backend-go/internal/domain/auth"
	"github.com/jobly-app/jobly-backend-go/internal/domain/user"
	"github.com/jobly-app/jobly-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Token implements AuthHandler.
func (a *AuthHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	token, err := a.authService.Login(r.Context(), req)
	if err != nil {
		slog.Error("Login failed", "username", req.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	token, err := a.authService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register failed", "username", req.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User registered successfully", token)
}
