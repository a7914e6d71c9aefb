package models

// RegisterRequest - payload for user self-registration and admin user creation
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// LoginRequest - payload for /login and /admin-login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse - identity echoed back on a successful login
type LoginResponse struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Email    string `json:"email"`
}

// BookEventRequest - payload for booking and cancellation
type BookEventRequest struct {
	EventID int64 `json:"event_id" binding:"required"`
}

// BookEventResponse - assigned booking id
type BookEventResponse struct {
	BookingID int64  `json:"booking_id"`
	Message   string `json:"message"`
}

// AddEventResponse - assigned event id
type AddEventResponse struct {
	EventID int64  `json:"event_id"`
	Message string `json:"message"`
}

// AddNotificationRequest - payload for pushing a notification to a user
type AddNotificationRequest struct {
	Email string `json:"email" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

// SendEmailRequest - payload for the confirmation-email endpoint
type SendEmailRequest struct {
	ToEmail string `json:"to_email" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
}

// AdminUserActionRequest - payload for the admin user-management endpoint.
// Action is one of delete, promote or add; the New* fields are only read
// for add.
type AdminUserActionRequest struct {
	Action   string `json:"action" binding:"required,oneof=delete promote add"`
	Username string `json:"username"`

	NewUsername string `json:"new_username"`
	NewPassword string `json:"new_password"`
	NewEmail    string `json:"new_email"`
}

// UserResponse - user record as exposed to admins, without the password hash
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// MessageResponse - generic success body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - generic failure body
type ErrorResponse struct {
	Error string `json:"error"`
}
