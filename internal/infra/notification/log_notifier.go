// Package notification delivers password reset tokens to their owners.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a ResetNotifier that records deliveries in the structured log.
// The reset token is never written; only the masked recipient and the validity window are.
func NewLogNotifier(logger *slog.Logger) service.ResetNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) NotifyPasswordReset(ctx context.Context, event *service.PasswordResetEvent) error {
	if event == nil {
		return errors.New("password reset event is nil")
	}
	if event.Email == "" || event.ResetToken == "" {
		return errors.Errorf("password reset event %s lacks recipient or token", event.EventID)
	}

	n.logger.InfoContext(ctx, "Password reset token delivered",
		slog.String("event_id", event.EventID),
		slog.Int64("user_id", event.UserID),
		slog.String("recipient", maskEmail(event.Email)),
		slog.String("valid_until", event.ValidUntil),
	)

	return nil
}

// maskEmail keeps the first character of the local part and the whole domain.
func maskEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "***"
	}

	return local[:1] + "***@" + domain
}
