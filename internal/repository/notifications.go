package repository

import (
	"context"

	"eventflow/internal/models"
	"eventflow/internal/storage"
)

type NotificationRepository struct {
	col *storage.Collection[models.Notification]
}

func NewNotificationRepository(path string) *NotificationRepository {
	return &NotificationRepository{col: storage.NewCollection[models.Notification](path)}
}

// Create appends a notification and assigns its id under the collection lock
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.col.Update(func(notifications []models.Notification) ([]models.Notification, bool, error) {
		notification.NotificationID = nextNotificationID(notifications)
		return append(notifications, *notification), true, nil
	})
}

// ListByEmail returns the notifications addressed to the given user. An
// absent store file is an error here, not an empty result.
func (r *NotificationRepository) ListByEmail(ctx context.Context, email string) ([]models.Notification, error) {
	notifications, err := r.col.ReadAllStrict()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.UserEmail == email {
			matched = append(matched, n)
		}
	}

	return matched, nil
}

func nextNotificationID(notifications []models.Notification) int64 {
	var max int64
	for _, n := range notifications {
		if n.NotificationID > max {
			max = n.NotificationID
		}
	}
	return max + 1
}
