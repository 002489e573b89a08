package user

import "context"

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	Get(ctx context.Context, username string) (UserResponse, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, username string) error
}
