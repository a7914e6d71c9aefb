package service

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "eventflow/internal/errors"
	"eventflow/internal/models"
	"eventflow/internal/repository"
)

// Fields an event submission must carry. Presence is all that is checked;
// dates and times are stored as sent.
var requiredEventFields = []string{"title", "description", "image", "date", "time"}

type EventService struct {
	repo *repository.EventRepository
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// Add validates field presence, appends the event and returns its assigned id.
// Unknown fields in the submission are preserved on the stored record.
func (s *EventService) Add(ctx context.Context, fields map[string]any) (int64, error) {
	var missing []string
	for _, f := range requiredEventFields {
		if _, ok := fields[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return 0, &apperrors.MissingFieldsError{Fields: missing}
	}

	event := models.Event{
		Title:       stringField(fields, "title"),
		Description: stringField(fields, "description"),
		Image:       stringField(fields, "image"),
		Date:        stringField(fields, "date"),
		Time:        stringField(fields, "time"),
	}

	extra := make(map[string]any)
	for k, v := range fields {
		if !isRequiredEventField(k) && k != "event_id" {
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		event.Extra = extra
	}

	if err := s.repo.Create(ctx, &event); err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}

	slog.Info("event added", "event_id", event.EventID, "title", event.Title)
	return event.EventID, nil
}

// List returns every event, empty if none exist yet
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.repo.List(ctx)
}

func isRequiredEventField(name string) bool {
	for _, f := range requiredEventFields {
		if f == name {
			return true
		}
	}
	return false
}

func stringField(fields map[string]any, name string) string {
	switch v := fields[name].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
