// Package recaptcha talks to the external bot-verification collaborator
// that issues one-time tokens per submission action.
package recaptcha

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// ErrNotConfigured is returned when the client has no site key.
var ErrNotConfigured = errors.New("recaptcha: not configured")

// Config controls how the verification client behaves.
type Config struct {
	BaseURL    string
	SiteKey    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client requests verification tokens from the collaborator. It implements
// booking.TokenSource.
type Client struct {
	baseURL    string
	siteKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a configured Client with sane defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SiteKey) == "" {
		return nil, ErrNotConfigured
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("recaptcha: base URL is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		siteKey:    cfg.SiteKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type tokenRequest struct {
	SiteKey string `json:"siteKey"`
	Action  string `json:"action"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// Token obtains an opaque verification token scoped to the action label.
// Any failure is uniform from the caller's point of view.
func (c *Client) Token(ctx context.Context, action string) (string, error) {
	body, err := json.Marshal(tokenRequest{SiteKey: c.siteKey, Action: action})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tokens", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recaptcha: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Debug("recaptcha token refused", "status", resp.StatusCode, "body", string(raw))
		return "", fmt.Errorf("recaptcha: status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("recaptcha: decode response: %w", err)
	}
	if tr.Error != "" {
		return "", fmt.Errorf("recaptcha: %s", tr.Error)
	}
	if tr.Token == "" {
		return "", errors.New("recaptcha: empty token")
	}
	return tr.Token, nil
}
