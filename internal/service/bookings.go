package service

import (
	"context"
	"fmt"
	"log/slog"

	"eventflow/internal/models"
	"eventflow/internal/repository"
)

type BookingService struct {
	repo *repository.BookingRepository
}

func NewBookingService(repo *repository.BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

// Book registers the caller for an event and returns the booking. No check
// that the event exists and no duplicate guard: a second booking for the
// same event simply gets the next id.
func (s *BookingService) Book(ctx context.Context, eventID int64, userEmail string) (*models.Booking, error) {
	booking := models.Booking{
		EventID:   models.ID(eventID),
		UserEmail: userEmail,
	}

	if err := s.repo.Create(ctx, &booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	slog.Info("event booked",
		"event_id", eventID,
		"booking_id", booking.BookingID,
		"user_email", userEmail,
	)

	return &booking, nil
}

// Cancel drops every booking the caller holds for the event. All duplicates
// go at once; ErrBookingNotFound when the caller holds none.
func (s *BookingService) Cancel(ctx context.Context, eventID int64, userEmail string) error {
	removed, err := s.repo.DeleteByEventAndUser(ctx, eventID, userEmail)
	if err != nil {
		return err
	}

	slog.Info("booking cancelled",
		"event_id", eventID,
		"user_email", userEmail,
		"removed", removed,
	)

	return nil
}
