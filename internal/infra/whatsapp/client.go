// Package whatsapp sends template messages through the WhatsApp Business Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"authhub/config"
	"authhub/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultHTTPTimeout = 15 * time.Second

// Client implements service.MessagingClient.
type Client struct {
	messagesURL string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient returns nil when WhatsApp credentials are missing, which
// disables the OTP flow.
func NewClient(cfg *config.Config, logger *slog.Logger) service.MessagingClient {
	wa := cfg.WhatsApp
	if wa == nil || wa.AccessToken == "" || wa.PhoneNumberID == "" {
		logger.Warn("WhatsApp credentials not configured; OTP sign-in is disabled")

		return nil
	}

	return newClient(wa, &http.Client{Timeout: defaultHTTPTimeout}, logger)
}

func newClient(cfg *config.WhatsAppConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		messagesURL: strings.TrimRight(cfg.GraphURL, "/") + "/" + cfg.APIVersion + "/" + cfg.PhoneNumberID + "/messages",
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
		logger:      logger,
	}
}

type parameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type component struct {
	Type       string      `json:"type"`
	SubType    string      `json:"sub_type,omitempty"`
	Index      string      `json:"index,omitempty"`
	Parameters []parameter `json:"parameters"`
}

type language struct {
	Code   string `json:"code"`
	Policy string `json:"policy"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components,omitempty"`
}

type messageRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

type messageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type errorResponse struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

func textParameters(values []string) []parameter {
	params := make([]parameter, 0, len(values))
	for _, v := range values {
		params = append(params, parameter{Type: "text", Text: v})
	}

	return params
}

func buildRequest(to string, msg service.TemplateMessage) messageRequest {
	var components []component
	if len(msg.ButtonParams) > 0 {
		components = append(components, component{
			Type:       "button",
			SubType:    "url",
			Index:      "0",
			Parameters: textParameters(msg.ButtonParams),
		})
	}
	if len(msg.BodyParams) > 0 {
		components = append(components, component{
			Type:       "body",
			Parameters: textParameters(msg.BodyParams),
		})
	}

	return messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "template",
		Template: template{
			Name:       msg.Name,
			Language:   language{Code: msg.Language, Policy: "deterministic"},
			Components: components,
		},
	}
}

// SendTemplateMessage posts a template message to the recipient.
func (c *Client) SendTemplateMessage(ctx context.Context, to string, msg service.TemplateMessage) error {
	body, err := json.Marshal(buildRequest(to, msg))
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.messagesURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create message request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send message")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return errors.Errorf("whatsapp api error %d (status %d): %s", apiErr.Error.Code, resp.StatusCode, apiErr.Error.Message)
		}

		return errors.Errorf("whatsapp api request failed with status %d", resp.StatusCode)
	}

	var result messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.Wrap(err, "failed to decode message response")
	}

	messageID := ""
	if len(result.Messages) > 0 {
		messageID = result.Messages[0].ID
	}
	c.logger.Debug("WhatsApp template message accepted", slog.String("template", msg.Name), slog.String("messageID", messageID))

	return nil
}
