package pubsub

import (
	"strconv"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
)

// eventAttributes builds message attributes for filtering and tracing. The token itself stays in the payload.
func eventAttributes(event *service.PasswordResetEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrEventID: event.EventID,
		constants.AttrUserID:  strconv.FormatInt(event.UserID, 10),
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}
