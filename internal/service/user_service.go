// Package service implements the business logic sitting between the HTTP
// handlers and the persistence layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cnetwk/user-api/internal/domain"
	"github.com/cnetwk/user-api/internal/service/auth"
	"github.com/cnetwk/user-api/internal/store"
	"github.com/google/uuid"
)

// HealthStatus reports whether the store is reachable and how many users
// it currently holds. On failure Status is "error" and Message carries the
// underlying failure text; the error is never raised to the caller.
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	UserCount int64  `json:"userCount"`
}

// UserService validates inputs, enforces the email-uniqueness invariant,
// delegates credential hashing to its auth collaborators, and redacts
// credential material from every user object it returns.
type UserService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewUserService creates a new UserService with explicitly passed
// collaborators. If logger is nil, a default logger will be used.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// SignUp creates a new user account.
//
// Returns a domain validation error for a blank name, blank email, or a
// password shorter than domain.MinPasswordLength. Returns
// store.ErrEmailExists when the email is already taken. The returned user
// is redacted.
//
// The email check before the insert is advisory; the unique constraint on
// users.email is what actually decides a concurrent duplicate signup.
func (s *UserService) SignUp(ctx context.Context, name, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	if _, err := s.userStore.GetByEmail(ctx, email); err == nil {
		s.logger.Debug("signup rejected, email already registered")
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	return user.Redacted(), nil
}

// Login authenticates a user by email and password.
//
// Returns a domain validation error when either field is blank, and
// auth.ErrInvalidCredentials for both an unknown email and a wrong
// password. No token or session is issued; a successful result proves
// authentication for this request only. The returned user is redacted.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.ErrEmptyEmail
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.ErrEmptyPassword
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to retrieve user by email", "error", err)
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user.Redacted(), nil
}

// GetAll retrieves every user, redacted.
func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	redacted := make([]*domain.User, len(users))
	for i, user := range users {
		redacted[i] = user.Redacted()
	}
	return redacted, nil
}

// GetByID retrieves a single user by ID, redacted.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Redacted(), nil
}

// Update overwrites an existing user's name and email with the given
// values and, when password is non-empty, replaces the credential hash.
// An empty password leaves the existing hash untouched.
// Returns store.ErrUserNotFound if the user does not exist. The returned
// user is redacted.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, name, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Name and email are taken as given, matching the original controller
	// behavior of update not re-running signup validation.
	user.Name = name
	user.Email = email

	if password != "" {
		hashed, err := s.hasher.Hash(password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return user.Redacted(), nil
}

// Delete permanently removes a user.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// HealthCheck reports store reachability and the current user count.
// A store failure is reported as a degraded status, not returned as an
// error.
func (s *UserService) HealthCheck(ctx context.Context) *HealthStatus {
	count, err := s.userStore.Count(ctx)
	if err != nil {
		s.logger.Error("health check failed", "error", err)
		return &HealthStatus{
			Status:  "error",
			Message: "Database connection failed: " + err.Error(),
		}
	}

	return &HealthStatus{
		Status:    "success",
		Message:   "Database connection is working!",
		UserCount: count,
	}
}
