package service

import (
	"context"
	"fmt"
	"log/slog"

	"eventflow/internal/models"
	"eventflow/internal/repository"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Push stores a notification for a user and returns its assigned id
func (s *NotificationService) Push(ctx context.Context, email, text string) (int64, error) {
	notification := models.Notification{
		UserEmail: email,
		Text:      text,
	}

	if err := s.repo.Create(ctx, &notification); err != nil {
		return 0, fmt.Errorf("create notification: %w", err)
	}

	slog.Info("notification pushed", "user_email", email, "notification_id", notification.NotificationID)
	return notification.NotificationID, nil
}

// ForUser returns the notifications addressed to the given user. A store
// that has never been written reads as ErrStoreNotFound, not as empty.
func (s *NotificationService) ForUser(ctx context.Context, email string) ([]models.Notification, error) {
	return s.repo.ListByEmail(ctx, email)
}
