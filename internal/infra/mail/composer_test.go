package mail

import (
	"testing"
	"time"

	"natours/config"
	"natours/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer(t *testing.T) service.MailComposer {
	t.Helper()

	c, err := NewComposer(&config.Config{Auth: &config.AuthConfig{ResetTokenExpiresIn: 10 * time.Minute}})
	require.NoError(t, err)

	return c
}

func TestComposer_Welcome(t *testing.T) {
	msg, err := newTestComposer(t).Welcome(service.MailRecipient{Name: "Ann Smith", Email: "ann@example.com"}, "http://localhost:3000/me")

	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", msg.To)
	assert.Equal(t, "Welcome to the Natours Family!", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi Ann,")
	assert.Contains(t, msg.HTML, `href="http://localhost:3000/me"`)
}

func TestComposer_PasswordReset(t *testing.T) {
	url := "http://localhost:3000/api/v1/users/resetPassword/abc"

	msg, err := newTestComposer(t).PasswordReset(service.MailRecipient{Name: "Leo", Email: "leo@example.com"}, url)

	require.NoError(t, err)
	assert.Equal(t, "Your password reset token (valid for only 10 minutes)", msg.Subject)
	assert.Contains(t, msg.HTML, url)
	assert.Contains(t, msg.HTML, "valid for only 10 minutes")
}

func TestComposer_BookingConfirmation(t *testing.T) {
	event := &service.BookingCreatedEvent{TourName: "The Forest Hiker", Price: 397}

	msg, err := newTestComposer(t).BookingConfirmation(service.MailRecipient{Email: "ann@example.com"}, event, "http://localhost:3000/my-tours")

	require.NoError(t, err)
	assert.Contains(t, msg.Subject, "The Forest Hiker")
	assert.Contains(t, msg.HTML, "$397.00")
	assert.Contains(t, msg.HTML, "Hi there,")
}

func TestComposer_RequiresRecipient(t *testing.T) {
	_, err := newTestComposer(t).Welcome(service.MailRecipient{Name: "Ann"}, "http://localhost:3000/me")

	assert.Error(t, err)
}

func TestComposer_EscapesNames(t *testing.T) {
	msg, err := newTestComposer(t).Welcome(service.MailRecipient{Name: "<script>", Email: "x@example.com"}, "http://localhost/me")

	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "Hi <script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}
