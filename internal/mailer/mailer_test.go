package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationBody(t *testing.T) {
	body := confirmationBody("2024-01-01", "10:00")

	assert.Contains(t, body, "2024-01-01")
	assert.Contains(t, body, "10:00")
	assert.Contains(t, body, "Event Flow")
}
