package errors

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDuplicateUsername = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrUserNotFound = errors.New("user not found")
var ErrEventNotFound = errors.New("event not found")
var ErrBookingNotFound = errors.New("no matching booking found")

var ErrStoreNotFound = errors.New("store file not found")
var ErrDecode = errors.New("store file is not a valid JSON array")

var ErrMailDelivery = errors.New("failed to send email")

// MissingFieldsError reports which required fields were absent from a request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
