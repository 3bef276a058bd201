package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Sender delivers a single text message.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// ProviderError is returned when the provider rejects a message.
type ProviderError struct {
	Status  int
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sms provider returned %d", e.Status)
	}
	return fmt.Sprintf("sms provider returned %d: %s (code %d)", e.Status, e.Message, e.Code)
}

// TwilioClient sends messages through the Twilio REST API.
type TwilioClient struct {
	baseURL    *url.URL
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// NewTwilioClient creates a client with default timeout.
func NewTwilioClient(baseURL, accountSID, authToken, from string, logger *slog.Logger) (*TwilioClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse sms url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("sms url must be absolute")
	}
	return &TwilioClient{
		baseURL:    parsed,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		logger:     logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts the message to the provider's Messages resource.
func (c *TwilioClient) Send(ctx context.Context, to, body string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/2010-04-01/Accounts", c.accountSID, "Messages.json")

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var msg messageResponse
		if err := json.Unmarshal(payload, &msg); err == nil && msg.SID != "" {
			c.logger.Info("sms accepted", slog.String("sid", msg.SID), slog.String("status", msg.Status))
		}
		return nil
	}

	providerErr := &ProviderError{Status: resp.StatusCode}
	var data errorResponse
	if err := json.Unmarshal(payload, &data); err == nil {
		providerErr.Code = data.Code
		providerErr.Message = data.Message
	}
	return providerErr
}
