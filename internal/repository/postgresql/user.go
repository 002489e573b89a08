package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobly-app/jobly-backend-go/internal/domain/user"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/database"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/sqlbuilder"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

var userColMap = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
}

const userColumns = "username, first_name, last_name, email, is_admin, password"

// Create implements user.UserRepository. The password field must already be
// hashed by the caller.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	query := `
		INSERT INTO users (username, first_name, last_name, email, is_admin, password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var created user.User
	err := u.db.QueryRow(ctx, query,
		newUser.Username, newUser.FirstName, newUser.LastName,
		newUser.Email, newUser.IsAdmin, newUser.PasswordHash,
	).Scan(&created.Username, &created.FirstName, &created.LastName,
		&created.Email, &created.IsAdmin, &created.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user %s: %w", newUser.Username, err)
	}
	return created, nil
}

// List implements user.UserRepository.
func (u *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`

	rows, err := u.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		var found user.User
		if err := rows.Scan(&found.Username, &found.FirstName, &found.LastName,
			&found.Email, &found.IsAdmin, &found.PasswordHash); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}
	return users, nil
}

// GetByUsername implements user.UserRepository.
func (u *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var found user.User
	err := u.db.QueryRow(ctx, query, username).
		Scan(&found.Username, &found.FirstName, &found.LastName,
			&found.Email, &found.IsAdmin, &found.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return found, nil
}

// Update implements user.UserRepository. Absence of a returned row is the
// NotFound signal.
func (u *userRepositoryImpl) Update(ctx context.Context, username string, req user.UpdateUserRequest) (user.User, error) {
	setClause, args, err := sqlbuilder.PartialUpdate(req.Assignments(), userColMap)
	if err != nil {
		return user.User{}, err
	}

	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE username = $%d RETURNING `+userColumns,
		setClause, len(args)+1,
	)
	args = append(args, username)

	var updated user.User
	err = u.db.QueryRow(ctx, query, args...).
		Scan(&updated.Username, &updated.FirstName, &updated.LastName,
			&updated.Email, &updated.IsAdmin, &updated.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update user %s: %w", username, err)
	}
	return updated, nil
}

// Delete implements user.UserRepository.
func (u *userRepositoryImpl) Delete(ctx context.Context, username string) error {
	tag, err := u.db.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", username, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
