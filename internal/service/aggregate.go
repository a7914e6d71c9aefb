package service

import (
	"context"
	"fmt"
	"log/slog"

	"eventflow/internal/models"
	"eventflow/internal/repository"
)

// AggregateService joins the event, booking and user stores to answer
// cross-entity queries. Reads are strict: a missing or corrupt store file
// fails the whole query instead of being papered over with empty data.
type AggregateService struct {
	events   *repository.EventRepository
	bookings *repository.BookingRepository
	users    *repository.UserRepository
}

func NewAggregateService(
	events *repository.EventRepository,
	bookings *repository.BookingRepository,
	users *repository.UserRepository,
) *AggregateService {
	return &AggregateService{
		events:   events,
		bookings: bookings,
		users:    users,
	}
}

// EventsForUser returns the events the user holds at least one booking for.
// Duplicate bookings collapse to one event, since membership in the booked
// set is all that matters.
func (s *AggregateService) EventsForUser(ctx context.Context, userEmail string) ([]models.Event, error) {
	events, err := s.events.ListStrict(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	bookings, err := s.bookings.ListStrict(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	booked := bookedEventIDs(bookings, userEmail)

	matched := make([]models.Event, 0, len(booked))
	for _, e := range events {
		if booked[e.EventID] {
			matched = append(matched, e)
		}
	}

	return matched, nil
}

// AllUserEvents produces one merged record per (user, booked event) pair
// across every user, for admin-wide reporting.
func (s *AggregateService) AllUserEvents(ctx context.Context) ([]models.UserEvent, error) {
	events, err := s.events.ListStrict(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	bookings, err := s.bookings.ListStrict(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	userEvents := make([]models.UserEvent, 0, len(bookings))
	for _, u := range users {
		booked := bookedEventIDs(bookings, u.Email)
		for _, e := range events {
			if booked[e.EventID] {
				userEvents = append(userEvents, mergeUserEvent(u, e))
			}
		}
	}

	return userEvents, nil
}

// bookedEventIDs collects the set of event ids the user holds bookings for.
// Records with unparsable ids are skipped with a warning, mirroring how
// cancellation treats them.
func bookedEventIDs(bookings []models.Booking, userEmail string) map[int64]bool {
	ids := make(map[int64]bool)
	for _, b := range bookings {
		if b.UserEmail != userEmail {
			continue
		}
		id, err := b.EventID.Int64()
		if err != nil {
			slog.Warn("skipping booking with malformed event id",
				"booking_id", b.BookingID,
				"event_id", string(b.EventID),
			)
			continue
		}
		ids[id] = true
	}
	return ids
}

func mergeUserEvent(u models.User, e models.Event) models.UserEvent {
	return models.UserEvent{
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		EventID:     e.EventID,
		Title:       e.Title,
		Description: e.Description,
		Image:       e.Image,
		Date:        e.Date,
		Time:        e.Time,
	}
}
