package service

import (
	"eventflow/internal/repository"
)

type Services struct {
	Users         *UserService
	Events        *EventService
	Bookings      *BookingService
	Notifications *NotificationService
	Aggregate     *AggregateService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Users:         NewUserService(repos.Users),
		Events:        NewEventService(repos.Events),
		Bookings:      NewBookingService(repos.Bookings),
		Notifications: NewNotificationService(repos.Notifications),
		Aggregate:     NewAggregateService(repos.Events, repos.Bookings, repos.Users),
	}
}
