package pubsub

import "authhub/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.AuthEvent) map[string]string {
	attributes := map[string]string{
		"event_type":  event.Type,
		"identity_id": event.IdentityID,
		"provider":    event.Provider,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
