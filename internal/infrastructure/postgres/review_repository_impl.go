package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/movie-review-api/internal/domain/entity"
	"github.com/oksasatya/movie-review-api/internal/domain/repository"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *entity.Review) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reviews (movie_id, user_id, rating, review_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, rv.MovieID, rv.UserID, rv.Rating, rv.ReviewText)

	if err := row.Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
			// integrity violation: surface as invalid data, not a server fault
			return fmt.Errorf("%w: %s", repository.ErrInvalid, pgErr.Message)
		}
		return err
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	rv := &entity.Review{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, movie_id, user_id, rating, review_text, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`, id)

	if err := row.Scan(&rv.ID, &rv.MovieID, &rv.UserID, &rv.Rating, &rv.ReviewText,
		&rv.CreatedAt, &rv.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *ReviewRepository) GetByIDWithAuthor(ctx context.Context, id string) (*entity.ReviewWithAuthor, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	rv := &entity.ReviewWithAuthor{}

	row := r.pool.QueryRow(ctx, `
		SELECT r.id, r.movie_id, u.id, u.username, r.rating, r.review_text, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`, id)

	if err := row.Scan(&rv.ID, &rv.MovieID, &rv.Author.ID, &rv.Author.Username,
		&rv.Rating, &rv.ReviewText, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *ReviewRepository) List(ctx context.Context, f repository.ReviewFilter) ([]entity.Review, error) {
	// Empty filter fields match everything; AND semantics when both are set.
	rows, err := r.pool.Query(ctx, `
		SELECT id, movie_id, user_id, rating, review_text, created_at, updated_at
		FROM reviews
		WHERE ($1 = '' OR user_id::text = $1)
		  AND ($2 = '' OR movie_id = $2)
		ORDER BY created_at
	`, f.UserID, f.MovieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Review, 0)
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.MovieID, &rv.UserID, &rv.Rating, &rv.ReviewText,
			&rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *ReviewRepository) ListByMovieWithAuthor(ctx context.Context, movieID string) ([]entity.ReviewWithAuthor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.movie_id, u.id, u.username, r.rating, r.review_text, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = $1
		ORDER BY r.created_at
	`, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.ReviewWithAuthor, 0)
	for rows.Next() {
		var rv entity.ReviewWithAuthor
		if err := rows.Scan(&rv.ID, &rv.MovieID, &rv.Author.ID, &rv.Author.Username,
			&rv.Rating, &rv.ReviewText, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, id string, u repository.ReviewUpdate) (*entity.Review, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	rv := &entity.Review{}

	row := r.pool.QueryRow(ctx, `
		UPDATE reviews
		SET movie_id    = COALESCE($1, movie_id),
		    rating      = COALESCE($2, rating),
		    review_text = COALESCE($3, review_text),
		    updated_at  = now()
		WHERE id = $4
		RETURNING id, movie_id, user_id, rating, review_text, created_at, updated_at
	`, u.MovieID, u.Rating, u.ReviewText, id)

	if err := row.Scan(&rv.ID, &rv.MovieID, &rv.UserID, &rv.Rating, &rv.ReviewText,
		&rv.CreatedAt, &rv.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return 0, nil
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
