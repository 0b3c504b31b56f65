package service

import (
	"context"
	"time"
)

const (
	AuthEventIdentityCreated      = "identity.created"
	AuthEventSessionAuthenticated = "session.authenticated"
)

// AuthEvent is published after a successful sign-in.
type AuthEvent struct {
	RequestID  string    `json:"request_id,omitempty"`
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	IdentityID string    `json:"identity_id"`
	Provider   string    `json:"provider"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
