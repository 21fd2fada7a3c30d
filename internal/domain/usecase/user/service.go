package user

import (
	"context"
	"errors"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/domain/port/persistence"
)

// Service handles user registration and credential authentication
type Service struct {
	users        persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new user service instance
func NewService(
	users persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new user with a hashed password and a zero balance.
// The username must be unique; format validation happens before storage.
func (s *Service) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username, err := ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	u, err := entity.NewUser(username, password, s.timeProvider)
	if err != nil {
		s.logger.Error("Failed to create user entity", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, errs.ErrDuplicateUsername) {
			s.logger.Warn("Registration with taken username", map[string]any{
				"username": username,
			})
		}
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  u.ID,
		"username": u.Username,
	})
	return u, nil
}

// Authenticate resolves a credential pair to a user. A missing credential
// yields ErrUnauthenticated; a wrong username or password yields
// ErrInvalidCredentials without revealing which part was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, errs.ErrUnauthenticated
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.CheckPassword(password) {
		s.logger.Warn("Failed login attempt", map[string]any{
			"username": username,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return u, nil
}
