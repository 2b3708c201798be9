package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"aifolio/internal/auth"
	apperrors "aifolio/internal/errors"
	"aifolio/internal/model"
	"aifolio/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{users: users, jwtService: jwtService}
}

// Register creates a new user with a hashed password. Username and email
// must both be unused; the store enforces the same constraint atomically,
// the pre-checks here only exist to answer with the right conflict.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailRegistered
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, model.InsertUser{
		Username: username,
		Email:    email,
		Password: string(hashed),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race between pre-check and insert; report the
			// conflicting field.
			if _, emailErr := s.users.FindByEmail(ctx, email); emailErr == nil {
				return nil, apperrors.ErrEmailRegistered
			}
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed token. Unknown users and
// wrong passwords produce the same error so the response distinguishes
// neither.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
