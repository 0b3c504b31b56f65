package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"authhub/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher pushes events to an HTTP endpoint in the Pub/Sub push
// format, for development without a Google project
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage mirrors the body Google Pub/Sub sends to push subscribers
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) PublishAuthEvent(ctx context.Context, event *service.AuthEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/auth-events",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.EventID
	pushMsg.Message.PublishTime = event.OccurredAt.UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", event.Type),
		slog.String("identity_id", event.IdentityID),
	)

	return nil
}

// Close is a no-op for the HTTP client
func (p *localHTTPPublisher) Close() error {
	return nil
}
