package auth

import (
	"context"

	"github.com/jobly-app/jobly-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req user.RegisterRequest) (TokenResponse, error)
}
