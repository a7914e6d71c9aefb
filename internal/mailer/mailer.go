// Package mailer sends confirmation emails through the SMTP relay, the only
// outbound network dependency of the service.
package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"eventflow/internal/config"
	apperrors "eventflow/internal/errors"
)

const confirmationSubject = "Appointment Confirmation Request from Event Flow"

type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendConfirmation delivers the appointment-confirmation email synchronously.
// Any dial, auth or send failure wraps ErrMailDelivery; the caller surfaces
// it and never retries.
func (m *Mailer) SendConfirmation(ctx context.Context, toEmail, date, timeSlot string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Username)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", confirmationSubject)
	msg.SetBody("text/plain", confirmationBody(date, timeSlot))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMailDelivery, err)
	}

	return nil
}

func confirmationBody(date, timeSlot string) string {
	return fmt.Sprintf(`Dear Recipient,

We hope you are doing well. This is a notification from Event Flow, your go-to platform for managing event bookings.

We are looking to schedule an appointment with you regarding your recent event inquiry. The proposed appointment is set for %s at %s. Kindly confirm if this time works for you, or feel free to suggest an alternative.

Thank you for using Event Flow. We look forward to your confirmation and to assisting you with your event needs.

Best regards,
The Event Flow Team
`, date, timeSlot)
}
