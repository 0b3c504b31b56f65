package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"authhub/config"
	"authhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendTemplateMessage(t *testing.T) {
	var got messageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v21.0/1234/messages", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"messaging_product":"whatsapp","messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	c := newClient(&config.WhatsAppConfig{
		GraphURL:      srv.URL,
		APIVersion:    "v21.0",
		PhoneNumberID: "1234",
		AccessToken:   "token",
	}, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := c.SendTemplateMessage(context.Background(), "15551234567", service.TemplateMessage{
		Name:         "otp_verification",
		Language:     "en_US",
		BodyParams:   []string{"482913"},
		ButtonParams: []string{"482913"},
	})

	require.NoError(t, err)
	assert.Equal(t, "15551234567", got.To)
	assert.Equal(t, "template", got.Type)
	assert.Equal(t, "otp_verification", got.Template.Name)
	assert.Equal(t, "deterministic", got.Template.Language.Policy)
	require.Len(t, got.Template.Components, 2)
	assert.Equal(t, "button", got.Template.Components[0].Type)
	assert.Equal(t, "url", got.Template.Components[0].SubType)
	assert.Equal(t, "482913", got.Template.Components[1].Parameters[0].Text)
}

func TestClient_SendTemplateMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Template name does not exist","type":"OAuthException","code":132001}}`))
	}))
	defer srv.Close()

	c := newClient(&config.WhatsAppConfig{GraphURL: srv.URL, APIVersion: "v21.0", PhoneNumberID: "1", AccessToken: "t"}, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := c.SendTemplateMessage(context.Background(), "1555", service.TemplateMessage{Name: "missing"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "132001")
}

func TestNewClient_NotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Nil(t, NewClient(&config.Config{}, logger))
	assert.Nil(t, NewClient(&config.Config{WhatsApp: &config.WhatsAppConfig{AccessToken: "t"}}, logger))
}
