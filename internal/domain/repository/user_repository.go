package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/movie-review-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("duplicate")
	// ErrInvalid is returned when a write violates a store-level field
	// constraint (check, not-null, foreign key).
	ErrInvalid = errors.New("invalid data")
)

// UserRepository defines the store operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
