package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	List(ctx context.Context) ([]User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, username string) error
}
