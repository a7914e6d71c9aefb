package repository

import (
	"context"
	"log/slog"

	apperrors "eventflow/internal/errors"
	"eventflow/internal/models"
	"eventflow/internal/storage"
)

type BookingRepository struct {
	col *storage.Collection[models.Booking]
}

func NewBookingRepository(path string) *BookingRepository {
	return &BookingRepository{col: storage.NewCollection[models.Booking](path)}
}

// Create appends a booking and assigns its id under the collection lock.
// No existence or duplicate checks: booking the same event twice is allowed
// and yields two distinct booking ids.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.col.Update(func(bookings []models.Booking) ([]models.Booking, bool, error) {
		booking.BookingID = nextBookingID(bookings)
		return append(bookings, *booking), true, nil
	})
}

// DeleteByEventAndUser removes every booking matching (eventID, email) and
// returns how many were dropped. A record whose stored event id does not
// parse is kept with a warning rather than failing the whole cancellation.
// Returns ErrBookingNotFound when nothing matched.
func (r *BookingRepository) DeleteByEventAndUser(ctx context.Context, eventID int64, email string) (int, error) {
	removed := 0

	err := r.col.Update(func(bookings []models.Booking) ([]models.Booking, bool, error) {
		kept := make([]models.Booking, 0, len(bookings))
		for _, b := range bookings {
			storedID, err := b.EventID.Int64()
			if err != nil {
				slog.Warn("keeping booking with malformed event id",
					"booking_id", b.BookingID,
					"event_id", string(b.EventID),
					"error", err,
				)
				kept = append(kept, b)
				continue
			}
			if storedID == eventID && b.UserEmail == email {
				removed++
				continue
			}
			kept = append(kept, b)
		}

		if removed == 0 {
			return nil, false, apperrors.ErrBookingNotFound
		}
		return kept, true, nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// List returns every booking, empty if the store file is absent
func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	return r.col.ReadAll()
}

// ListStrict returns every booking, failing if the store file is absent
func (r *BookingRepository) ListStrict(ctx context.Context) ([]models.Booking, error) {
	return r.col.ReadAllStrict()
}

func nextBookingID(bookings []models.Booking) int64 {
	var max int64
	for _, b := range bookings {
		if b.BookingID > max {
			max = b.BookingID
		}
	}
	return max + 1
}
