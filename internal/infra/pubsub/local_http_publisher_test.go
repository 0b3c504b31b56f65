package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"authhub/config"
	"authhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAuthEvent(t *testing.T) {
	var push PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&push))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	event := &service.AuthEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.AuthEventSessionAuthenticated,
		IdentityID: "id-1",
		Provider:   "evm",
		Role:       "USER",
		OccurredAt: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	err := NewLocalHTTPPublisher(srv.URL, discardLogger()).PublishAuthEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", push.Message.MessageID)
	assert.Equal(t, "2025-03-14T12:00:00Z", push.Message.PublishTime)
	assert.Equal(t, "id-1", push.Message.Attributes["identity_id"])
	assert.Equal(t, service.AuthEventSessionAuthenticated, push.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)
	var decoded service.AuthEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewLocalHTTPPublisher(srv.URL, discardLogger()).PublishAuthEvent(context.Background(), &service.AuthEvent{EventID: "e"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "auth"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			if tt.cfg == nil {
				assert.NoError(t, publisher.PublishAuthEvent(context.Background(), &service.AuthEvent{Type: "noop"}))
			}
		})
	}
}
