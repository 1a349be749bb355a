package repository

import (
	"context"

	"github.com/oksasatya/movie-review-api/internal/domain/entity"
)

// ReviewFilter narrows List results. Empty fields match everything; both set
// means both must match.
type ReviewFilter struct {
	UserID  string
	MovieID string
}

// ReviewUpdate carries a partial update: nil fields are left unchanged.
type ReviewUpdate struct {
	MovieID    *string
	Rating     *int
	ReviewText *string
}

// ReviewRepository defines the store operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetByIDWithAuthor(ctx context.Context, id string) (*entity.ReviewWithAuthor, error)
	List(ctx context.Context, f ReviewFilter) ([]entity.Review, error)
	ListByMovieWithAuthor(ctx context.Context, movieID string) ([]entity.ReviewWithAuthor, error)
	Update(ctx context.Context, id string, u ReviewUpdate) (*entity.Review, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
