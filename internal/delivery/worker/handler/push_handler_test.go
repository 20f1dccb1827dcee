package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockService.MockResetNotifier) {
	notifier := mockService.NewMockResetNotifier(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: notifier,
	})
	h.now = func() time.Time { return testNow }

	return h, notifier
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event *service.PasswordResetEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func serve(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func validEvent() *service.PasswordResetEvent {
	return &service.PasswordResetEvent{
		EventID:    "evt-1",
		UserID:     7,
		Email:      "ann@example.com",
		ResetToken: "abc=",
		ValidUntil: testNow.Truncate(24 * time.Hour).Add(24 * time.Hour).Format(time.RFC3339),
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	cfg := &config.Config{}

	t.Run("delivers and propagates the request id", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, cfg)
		notifier.EXPECT().NotifyPasswordReset(mock.Anything, mock.MatchedBy(func(event *service.PasswordResetEvent) bool {
			return event.UserID == 7 && event.ResetToken == "abc="
		})).Return(nil)

		rec := serve(h, pushBody(t, encodeEvent(t, validEvent()), map[string]string{constants.AttrRequestID: "req-9"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("notifier failure asks for redelivery", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, cfg)
		notifier.EXPECT().NotifyPasswordReset(mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		rec := serve(h, pushBody(t, encodeEvent(t, validEvent()), nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("expired event is acknowledged without delivery", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		event := validEvent()
		event.ValidUntil = testNow.Add(-time.Hour).Format(time.RFC3339)

		rec := serve(h, pushBody(t, encodeEvent(t, event), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad base64", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := serve(h, pushBody(t, "%%%", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad json", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := serve(h, pushBody(t, base64.StdEncoding.EncodeToString([]byte("{")), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("incomplete event", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		event := validEvent()
		event.ResetToken = ""

		rec := serve(h, pushBody(t, encodeEvent(t, event), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesGooglePushes(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("bad audience") }

	rec := serve(h, pushBody(t, encodeEvent(t, validEvent()), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	dev := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	dev.Env.Env = constants.EnvDevelop
	devHandler, _ := newTestPushHandler(t, dev)
	assert.False(t, devHandler.verifyPushAuth)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	var msg PubSubMessage

	assert.Equal(t, "from-event", h.extractRequestID(context.Background(), &msg, &service.PasswordResetEvent{RequestID: "from-event"}))

	generated := h.extractRequestID(context.Background(), &msg, &service.PasswordResetEvent{})
	assert.Len(t, generated, 36)
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	assert.Error(t, verifyPubSubToken(req))
}
