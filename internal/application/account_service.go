package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/movie-review-api/internal/domain/entity"
	"github.com/oksasatya/movie-review-api/internal/domain/repository"
	"github.com/oksasatya/movie-review-api/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// at login; the two cases are not distinguished to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrNotAccountOwner    = errors.New("not account owner")
)

// AccountService orchestrates registration, login and self-service account
// deletion. Passwords are bcrypt-hashed here, before anything reaches the
// store.
type AccountService struct {
	Users   repository.UserRepository
	Reviews repository.ReviewRepository
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
}

func NewAccountService(users repository.UserRepository, reviews repository.ReviewRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AccountService {
	return &AccountService{Users: users, Reviews: reviews, JWT: jwt, Logger: logger}
}

// Register creates a new account. The username must be unused; the existence
// check runs before any write, with the unique index as backstop.
func (s *AccountService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if _, err := s.Users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	}
	return u, nil
}

// Login checks the credentials and issues a signed bearer token binding the
// username and user id.
func (s *AccountService) Login(ctx context.Context, username, password string) (entity.PublicUser, string, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.PublicUser{}, "", ErrInvalidCredentials
		}
		return entity.PublicUser{}, "", err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return entity.PublicUser{}, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.Username, u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return entity.PublicUser{}, "", err
	}
	return u.Public(), token, nil
}

// DeleteAccount removes the caller's own account together with every review
// it owns. Reviews are removed first so a crash between the two deletes never
// leaves reviews referencing a missing user.
func (s *AccountService) DeleteAccount(ctx context.Context, principalUsername, targetUsername, password string) error {
	if principalUsername != targetUsername {
		return ErrNotAccountOwner
	}

	u, err := s.Users.GetByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return ErrWrongPassword
	}

	n, err := s.Reviews.DeleteByUser(ctx, u.ID)
	if err != nil {
		return err
	}
	if err := s.Users.Delete(ctx, u.ID); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username, "reviews_deleted": n}).Info("account deleted")
	}
	return nil
}
