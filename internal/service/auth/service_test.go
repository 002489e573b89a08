package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobly-app/jobly-backend-go/internal/domain/auth"
	"github.com/jobly-app/jobly-backend-go/internal/domain/user"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/jwt"
)

// fakeUserRepo keeps users in a map so the service logic can be tested
// without Postgres.
type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	if _, ok := f.users[newUser.Username]; ok {
		return user.User{}, user.ErrUsernameExists
	}
	f.users[newUser.Username] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	users := []user.User{}
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	found, ok := f.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

func (f *fakeUserRepo) Update(_ context.Context, username string, _ user.UpdateUserRequest) (user.User, error) {
	found, ok := f.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := f.users[username]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, username)
	return nil
}

func newTestService(repo user.UserRepository) auth.AuthService {
	return NewAuthService(repo, jwt.NewJWTService("test-secret-key-for-jwt", "1h"))
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, isAdmin bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users[username] = user.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "password123", false)
	svc := newTestService(repo)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Username: "u1", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.NotZero(t, resp.ExpiresAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "u1", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user reads the same as wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{})
		assert.Error(t, err)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	req := user.RegisterRequest{
		Username:  "newuser",
		Password:  "password123",
		FirstName: "New",
		LastName:  "User",
		Email:     "new@user.com",
	}

	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	stored := repo.users["newuser"]
	assert.False(t, stored.IsAdmin, "self-registration must never grant admin")
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}
