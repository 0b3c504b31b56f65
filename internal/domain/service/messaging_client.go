package service

import "context"

// TemplateMessage is a pre-approved business message template.
type TemplateMessage struct {
	Name         string
	Language     string
	BodyParams   []string
	ButtonParams []string // URL button at index 0
}

// MessagingClient delivers template messages to a phone number given as
// digits without the leading '+'.
type MessagingClient interface {
	SendTemplateMessage(ctx context.Context, to string, template TemplateMessage) error
}
