package application

import (
	"context"
	"fmt"
	"time"

	"github.com/oksasatya/movie-review-api/internal/domain/entity"
	"github.com/oksasatya/movie-review-api/internal/domain/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	seq   int
	users map[string]*entity.User // by id
	ops   *[]string               // optional shared op log
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) log(op string) {
	if f.ops != nil {
		*f.ops = append(*f.ops, op)
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, ex := range f.users {
		if ex.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	f.log("user.create")
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	f.log("user.delete")
	return nil
}

type fakeReviewRepo struct {
	seq     int
	reviews map[string]*entity.Review // by id
	users   *fakeUserRepo             // for username resolution
	ops     *[]string
}

func newFakeReviewRepo(users *fakeUserRepo) *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*entity.Review{}, users: users}
}

func (f *fakeReviewRepo) log(op string) {
	if f.ops != nil {
		*f.ops = append(*f.ops, op)
	}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.Review) error {
	f.seq++
	r.ID = fmt.Sprintf("review-%d", f.seq)
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	f.reviews[r.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	if r, ok := f.reviews[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeReviewRepo) withAuthor(r *entity.Review) (*entity.ReviewWithAuthor, error) {
	u, err := f.users.GetByID(context.Background(), r.UserID)
	if err != nil {
		return nil, err
	}
	return &entity.ReviewWithAuthor{
		ID:         r.ID,
		MovieID:    r.MovieID,
		Author:     entity.Author{ID: u.ID, Username: u.Username},
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func (f *fakeReviewRepo) GetByIDWithAuthor(ctx context.Context, id string) (*entity.ReviewWithAuthor, error) {
	r, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return f.withAuthor(r)
}

func (f *fakeReviewRepo) List(_ context.Context, flt repository.ReviewFilter) ([]entity.Review, error) {
	out := make([]entity.Review, 0)
	for i := 1; i <= f.seq; i++ {
		r, ok := f.reviews[fmt.Sprintf("review-%d", i)]
		if !ok {
			continue
		}
		if flt.UserID != "" && r.UserID != flt.UserID {
			continue
		}
		if flt.MovieID != "" && r.MovieID != flt.MovieID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByMovieWithAuthor(ctx context.Context, movieID string) ([]entity.ReviewWithAuthor, error) {
	plain, err := f.List(ctx, repository.ReviewFilter{MovieID: movieID})
	if err != nil {
		return nil, err
	}
	out := make([]entity.ReviewWithAuthor, 0, len(plain))
	for i := range plain {
		wa, err := f.withAuthor(&plain[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *wa)
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, id string, u repository.ReviewUpdate) (*entity.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.MovieID != nil {
		r.MovieID = *u.MovieID
	}
	if u.Rating != nil {
		r.Rating = *u.Rating
	}
	if u.ReviewText != nil {
		r.ReviewText = *u.ReviewText
	}
	r.UpdatedAt = time.Now()
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for id, r := range f.reviews {
		if r.UserID == userID {
			delete(f.reviews, id)
			n++
		}
	}
	f.log("reviews.deleteByUser")
	return n, nil
}

var (
	_ repository.UserRepository   = (*fakeUserRepo)(nil)
	_ repository.ReviewRepository = (*fakeReviewRepo)(nil)
)
