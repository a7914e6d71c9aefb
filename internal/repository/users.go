package repository

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "eventflow/internal/errors"
	"eventflow/internal/models"
	"eventflow/internal/storage"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@example.com"

	// Password of the seeded admin account. Matches the account every
	// deployment of the original service shipped with.
	defaultAdminPassword = "1234"
)

type UserRepository struct {
	col *storage.Collection[models.User]
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{col: storage.NewCollection[models.User](path)}
}

// List returns every user. If no admin record exists yet, one is seeded with
// the default password and persisted before returning.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User

	err := r.col.Update(func(existing []models.User) ([]models.User, bool, error) {
		for _, u := range existing {
			if u.Username == adminUsername {
				users = existing
				return nil, false, nil
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, fmt.Errorf("hash admin password: %w", err)
		}

		seeded := append(existing, models.User{
			Username:     adminUsername,
			PasswordHash: string(hash),
			Email:        adminEmail,
			Role:         models.RoleAdmin,
		})
		users = seeded
		return seeded, true, nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// SaveAll overwrites the user collection
func (r *UserRepository) SaveAll(ctx context.Context, users []models.User) error {
	return r.col.WriteAll(users)
}

// GetByUsername returns the user with the given username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}

	return nil, apperrors.ErrUserNotFound
}

// Create appends a new user, rejecting duplicate usernames before any write
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	return r.col.Update(func(users []models.User) ([]models.User, bool, error) {
		for _, u := range users {
			if u.Username == user.Username {
				return nil, false, apperrors.ErrDuplicateUsername
			}
		}
		return append(users, user), true, nil
	})
}

// Delete removes the user with the given username
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	return r.col.Update(func(users []models.User) ([]models.User, bool, error) {
		kept := make([]models.User, 0, len(users))
		for _, u := range users {
			if u.Username != username {
				kept = append(kept, u)
			}
		}
		if len(kept) == len(users) {
			return nil, false, apperrors.ErrUserNotFound
		}
		return kept, true, nil
	})
}

// Promote raises the user with the given username to the admin role
func (r *UserRepository) Promote(ctx context.Context, username string) error {
	return r.col.Update(func(users []models.User) ([]models.User, bool, error) {
		found := false
		for i := range users {
			if users[i].Username == username {
				users[i].Role = models.RoleAdmin
				found = true
			}
		}
		if !found {
			return nil, false, apperrors.ErrUserNotFound
		}
		return users, true, nil
	})
}
