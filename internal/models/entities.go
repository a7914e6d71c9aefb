package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Role distinguishes regular users from administrators
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
}

// Event represents an event record. Store files may carry fields beyond the
// known ones (prices, venues, whatever the admin form sent); those are kept
// in Extra and written back untouched.
type Event struct {
	EventID     int64  `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date"`
	Time        string `json:"time"`

	Extra map[string]any `json:"-"`
}

var knownEventFields = []string{"event_id", "title", "description", "image", "date", "time"}

func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range knownEventFields {
		delete(raw, k)
	}
	if len(raw) > 0 {
		a.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return err
			}
			a.Extra[k] = val
		}
	}

	*e = Event(a)
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Extra)+len(knownEventFields))
	for k, v := range e.Extra {
		out[k] = v
	}
	out["event_id"] = e.EventID
	out["title"] = e.Title
	out["description"] = e.Description
	out["image"] = e.Image
	out["date"] = e.Date
	out["time"] = e.Time
	return json.Marshal(out)
}

// Booking links a user to an event they registered for
type Booking struct {
	EventID   FlexibleID `json:"event_id"`
	BookingID int64      `json:"booking_id"`
	UserEmail string     `json:"user_email"`
}

// Notification is a message pushed to a user by an admin or the system
type Notification struct {
	UserEmail      string `json:"user_email"`
	NotificationID int64  `json:"notification_id"`
	Text           string `json:"text"`
}

// UserEvent is the merged (user, booked event) view used for admin-wide
// reporting. The fields are named explicitly so nothing is decided by dict
// override order; the image always comes from the event and the password
// hash is never exposed.
type UserEvent struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	EventID     int64  `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Identity is the authenticated caller established by the session layer
type Identity struct {
	Username string
	Role     Role
	Email    string
}

// FlexibleID - a record id that tolerates being stored as a JSON number or a
// quoted string. The raw scalar is kept and parsed on demand so one malformed
// record cannot poison decoding of a whole collection.
type FlexibleID string

// UnmarshalJSON keeps the stored scalar as-is, minus quoting
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	*id = FlexibleID(str)
	return nil
}

// MarshalJSON writes numeric ids back as numbers
func (id FlexibleID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Int64 parses the id, failing on non-numeric scalars
func (id FlexibleID) Int64() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(id)), 10, 64)
}

// ID builds a FlexibleID from a numeric id
func ID(v int64) FlexibleID {
	return FlexibleID(strconv.FormatInt(v, 10))
}
