package repository

import (
	"context"

	"eventflow/internal/models"
	"eventflow/internal/storage"
)

type EventRepository struct {
	col *storage.Collection[models.Event]
}

func NewEventRepository(path string) *EventRepository {
	return &EventRepository{col: storage.NewCollection[models.Event](path)}
}

// Create appends the event and assigns its id. The id is one past the highest
// id on file, computed while holding the collection lock, so it is unique and
// monotonic for the life of the store.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.col.Update(func(events []models.Event) ([]models.Event, bool, error) {
		event.EventID = nextEventID(events)
		return append(events, *event), true, nil
	})
}

// List returns every event, empty if the store file is absent
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	return r.col.ReadAll()
}

// ListStrict returns every event, failing if the store file is absent
func (r *EventRepository) ListStrict(ctx context.Context) ([]models.Event, error) {
	return r.col.ReadAllStrict()
}

func nextEventID(events []models.Event) int64 {
	var max int64
	for _, e := range events {
		if e.EventID > max {
			max = e.EventID
		}
	}
	return max + 1
}
