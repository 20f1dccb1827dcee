package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_NotifyPasswordReset(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := notifier.NotifyPasswordReset(context.Background(), &service.PasswordResetEvent{
		EventID:    "evt-1",
		UserID:     7,
		Email:      "alice@example.com",
		ResetToken: "secret-token",
		ValidUntil: "2026-10-16T00:00:00Z",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"recipient":"a***@example.com"`)
	assert.Contains(t, buf.String(), `"event_id":"evt-1"`)
	assert.NotContains(t, buf.String(), "secret-token")
}

func TestLogNotifier_RejectsIncompleteEvents(t *testing.T) {
	notifier := NewLogNotifier(slog.New(slog.DiscardHandler))

	assert.Error(t, notifier.NotifyPasswordReset(context.Background(), nil))
	assert.Error(t, notifier.NotifyPasswordReset(context.Background(), &service.PasswordResetEvent{EventID: "evt", Email: "a@b.c"}))
	assert.Error(t, notifier.NotifyPasswordReset(context.Background(), &service.PasswordResetEvent{EventID: "evt", ResetToken: "t"}))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "b***@example.org", maskEmail("bob@example.org"))
	assert.Equal(t, "***", maskEmail("not-an-email"))
	assert.Equal(t, "***", maskEmail("@example.org"))
}
