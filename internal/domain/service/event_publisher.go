package service

import (
	"context"
)

// PasswordResetEvent asks the mail worker to deliver a reset token out of band.
type PasswordResetEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventID    string `json:"event_id"`
	UserID     int64  `json:"user_id"`
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
	// ValidUntil is the end of the UTC day the token was derived on, RFC 3339.
	ValidUntil string `json:"valid_until"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPasswordReset publishes a reset request for asynchronous delivery
	PublishPasswordReset(ctx context.Context, event *PasswordResetEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// ResetNotifier delivers a reset token to its owner. Implementations run inside the mail worker.
type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, event *PasswordResetEvent) error
}
