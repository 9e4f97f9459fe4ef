// Package chat provides an outbound client for an OpenAI-compatible
// chat-completions endpoint, used to generate new ideas from keywords.
package chat

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/web3privacy/ideas-server/internal/config"
	"github.com/web3privacy/ideas-server/internal/errors"
)

// Client calls the configured chat-completions endpoint.
// Outbound calls are rate limited as a whole so a burst of generate requests
// cannot exhaust the upstream token budget.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	url         string
	model       string
	apiKey      string
}

// NewClient creates a chat client from config.
func NewClient(cfg config.ChatConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		// One upstream call per second, burst of 3
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 3),
		logger:      logger,
		url:         cfg.URL,
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
	}
}

// Configured reports whether an API key is present. Without one the generate
// endpoint fails before any upstream call.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system and user prompt and returns the model's reply text.
// Failures map onto the fixed error vocabulary the API promises its callers.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("calling chat backend", "url", c.url, "model", c.model)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Upstream("failed to call AI service").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("chat backend returned non-200", "status", resp.StatusCode)
		return "", errors.Upstream("request to backend failed")
	}

	var chatResp chatResponse
	if err := json.UnmarshalRead(resp.Body, &chatResp); err != nil {
		return "", errors.Upstream("failed to parse response from backend").WithCause(err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", errors.Upstream("failed to parse response from backend")
	}

	return chatResp.Choices[0].Message.Content, nil
}
