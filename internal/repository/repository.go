package repository

import "path/filepath"

// Store file names, one JSON array per entity
const (
	usersFile         = "users.json"
	eventsFile        = "events.json"
	bookingsFile      = "booking.json"
	notificationsFile = "notifications.json"
)

type Repositories struct {
	Users         *UserRepository
	Events        *EventRepository
	Bookings      *BookingRepository
	Notifications *NotificationRepository
}

// NewRepositories creates the file-backed repositories under dataDir
func NewRepositories(dataDir string) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(filepath.Join(dataDir, usersFile)),
		Events:        NewEventRepository(filepath.Join(dataDir, eventsFile)),
		Bookings:      NewBookingRepository(filepath.Join(dataDir, bookingsFile)),
		Notifications: NewNotificationRepository(filepath.Join(dataDir, notificationsFile)),
	}
}
