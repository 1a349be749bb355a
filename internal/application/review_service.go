package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/movie-review-api/internal/domain/entity"
	"github.com/oksasatya/movie-review-api/internal/domain/repository"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotReviewOwner = errors.New("not review owner")
)

// ReviewService orchestrates review CRUD. Mutations check existence first,
// then ownership, before touching the store.
type ReviewService struct {
	Reviews repository.ReviewRepository
	Logger  *logrus.Logger
}

func NewReviewService(reviews repository.ReviewRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Reviews: reviews, Logger: logger}
}

// CreateReviewInput is the client-controlled part of a new review. The owner
// always comes from the authenticated principal, never from the payload.
type CreateReviewInput struct {
	MovieID    string
	Rating     int
	ReviewText string
}

// UpdateReviewInput is a partial update; nil fields are left unchanged.
type UpdateReviewInput struct {
	MovieID    *string
	Rating     *int
	ReviewText *string
}

func (s *ReviewService) Create(ctx context.Context, principalUserID string, in CreateReviewInput) (*entity.Review, error) {
	rv := &entity.Review{
		MovieID:    in.MovieID,
		UserID:     principalUserID,
		Rating:     in.Rating,
		ReviewText: strings.TrimSpace(in.ReviewText),
	}
	if err := s.Reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"review_id": rv.ID, "movie_id": rv.MovieID, "user_id": rv.UserID}).Info("review created")
	}
	return rv, nil
}

func (s *ReviewService) GetByID(ctx context.Context, id string) (*entity.ReviewWithAuthor, error) {
	rv, err := s.Reviews.GetByIDWithAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) List(ctx context.Context, userID, movieID string) ([]entity.Review, error) {
	return s.Reviews.List(ctx, repository.ReviewFilter{UserID: userID, MovieID: movieID})
}

func (s *ReviewService) ListByMovie(ctx context.Context, movieID string) ([]entity.ReviewWithAuthor, error) {
	return s.Reviews.ListByMovieWithAuthor(ctx, movieID)
}

func (s *ReviewService) Update(ctx context.Context, principalUserID, id string, in UpdateReviewInput) (*entity.Review, error) {
	rv, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if !sameID(rv.UserID, principalUserID) {
		return nil, ErrNotReviewOwner
	}

	upd := repository.ReviewUpdate{MovieID: in.MovieID, Rating: in.Rating, ReviewText: in.ReviewText}
	if in.ReviewText != nil {
		trimmed := strings.TrimSpace(*in.ReviewText)
		upd.ReviewText = &trimmed
	}
	out, err := s.Reviews.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete removes the review and returns its prior content.
func (s *ReviewService) Delete(ctx context.Context, principalUserID, id string) (*entity.Review, error) {
	rv, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if !sameID(rv.UserID, principalUserID) {
		return nil, ErrNotReviewOwner
	}

	if err := s.Reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"review_id": rv.ID, "user_id": rv.UserID}).Info("review deleted")
	}
	return rv, nil
}

// sameID compares two store ids after normalization.
func sameID(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
