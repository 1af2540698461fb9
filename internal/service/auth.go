package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pokevault/pokedex-service/internal/models"
	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

// Register creates a new user with a hashed password and issues a session
// token. The email lookup is case-sensitive; the unique index on users.email
// backs the check up at write time.
func (s *Service) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	_, err := s.store.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, "", serviceerrors.NewDuplicateEmail()
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, "", serviceerrors.NewInternal(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", serviceerrors.NewInternal(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, "", serviceerrors.NewDuplicateEmail()
		}
		return nil, "", serviceerrors.NewInternal(err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", serviceerrors.NewInternal(err)
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, token, nil
}

// Login authenticates a user and issues a fresh session token. An unknown
// email and a wrong password return the identical error so callers cannot
// probe which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", serviceerrors.NewInvalidCredentials()
		}
		return nil, "", serviceerrors.NewInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", serviceerrors.NewInvalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", serviceerrors.NewInternal(err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return user, token, nil
}

// Profile returns the user behind an authenticated session. This is the one
// place that re-validates the token's user id against the store.
func (s *Service) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, serviceerrors.NewNotFound("User not found")
		}
		return nil, serviceerrors.NewInternal(err)
	}
	return user, nil
}
