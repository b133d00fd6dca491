package email

import (
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groomday/groomday-backend-go/internal/config"
)

func newTestService(t *testing.T, send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) (*emailServiceImpl, *[]time.Duration) {
	t.Helper()

	svc, err := NewEmailService(config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "no-reply@groomday.app",
		FromName: "Groomday",
	})
	require.NoError(t, err)

	impl := svc.(*emailServiceImpl)
	impl.sendMail = send

	var slept []time.Duration
	impl.sleep = func(d time.Duration) { slept = append(slept, d) }
	return impl, &slept
}

func TestSendInvitation_RetriesTransientFailures(t *testing.T) {
	attempts := 0
	svc, slept := newTestService(t, func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		attempts++
		if attempts < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	err := svc.SendInvitation("groomer@example.com", "Happy Paws", "Kim Minji", "groomer", "https://groomday.app/invitations/tok", "2026-09-05")
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	// backoff doubles between attempts
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *slept)
}

func TestSendInvitation_GivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	svc, _ := newTestService(t, func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		attempts++
		return errors.New("mailbox unavailable")
	})

	err := svc.SendInvitation("groomer@example.com", "Happy Paws", "Kim Minji", "groomer", "https://groomday.app/invitations/tok", "2026-09-05")
	require.Error(t, err)
	assert.Equal(t, maxRetries, attempts)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestSendInvitation_SkipsWhenSMTPUnconfigured(t *testing.T) {
	svc, err := NewEmailService(config.SMTPConfig{})
	require.NoError(t, err)

	attempts := 0
	impl := svc.(*emailServiceImpl)
	impl.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		attempts++
		return nil
	}

	err = svc.SendInvitation("groomer@example.com", "Happy Paws", "Kim Minji", "groomer", "https://groomday.app/invitations/tok", "2026-09-05")
	require.NoError(t, err)
	assert.Zero(t, attempts)
}
