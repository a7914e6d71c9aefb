package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	apperrors "eventflow/internal/errors"
	"eventflow/internal/models"
	"eventflow/internal/repository"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a user-role account. Fails with ErrDuplicateUsername
// before any write when the name is taken.
func (s *UserService) Register(ctx context.Context, username, password, email string) error {
	// Make sure the store (and the seeded admin) exists before the
	// duplicate check runs against it.
	if _, err := s.repo.List(ctx); err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         models.RoleUser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	slog.Info("user registered", "username", username)
	return nil
}

// Authenticate checks the credentials and returns the matching user.
// Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// AuthenticateAdmin is Authenticate plus a role check, used by /admin-login
func (s *UserService) AuthenticateAdmin(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// List returns every user for the admin dashboard
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	slog.Info("user deleted", "username", username)
	return nil
}

// Promote raises a user to the admin role
func (s *UserService) Promote(ctx context.Context, username string) error {
	if err := s.repo.Promote(ctx, username); err != nil {
		return err
	}
	slog.Info("user promoted to admin", "username", username)
	return nil
}
