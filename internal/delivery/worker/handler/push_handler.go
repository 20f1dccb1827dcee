package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// pushTokenVerifier checks the OIDC token Google attaches to push requests.
type pushTokenVerifier func(req *http.Request) error

// PushHandler receives password reset events and hands them to the ResetNotifier.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    pushTokenVerifier
	logger         *slog.Logger
	notifier       service.ResetNotifier
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.ResetNotifier
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and not in development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		notifier:       params.Notifier,
		now:            time.Now,
	}
}

// HandlePush acknowledges with 200, asks for redelivery with 503 and rejects malformed messages with 400.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PasswordResetEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse password reset event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.Email == "" || event.ResetToken == "" {
		h.logger.Error("[Worker] Password reset event is incomplete", slog.String("event_id", event.EventID))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	// The token stops matching at the end of its UTC day, so a late delivery is useless.
	if validUntil, err := time.Parse(time.RFC3339, event.ValidUntil); err == nil && !h.now().Before(validUntil) {
		reqLogger.Info("[Worker] Dropping expired password reset event",
			slog.String("event_id", event.EventID),
			slog.String("valid_until", event.ValidUntil),
		)

		return c.NoContent(http.StatusOK)
	}

	if err := h.notifier.NotifyPasswordReset(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to deliver password reset",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Password reset delivered", slog.String("event_id", event.EventID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PasswordResetEvent) string {
	if requestID, ok := pushMsg.Message.Attributes[constants.AttrRequestID]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing or malformed authorization header")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
