// Package llm provides a lightweight client for an OpenAI-compatible chat
// completion API. Uses raw HTTP calls (no SDK) to keep the dependency small.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "https://api.openai.com/v1"

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("llm: not configured")

// ErrOverBudget is returned when the process-wide outbound budget is
// exhausted. The API is billed per call; this caps the worst-case spend even
// if per-client throttling is bypassed.
var ErrOverBudget = errors.New("llm: outbound budget exhausted")

// Message is one turn of a chat completion conversation.
type Message struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// Client is the chat completion interface used by the chat service.
type Client interface {
	// Complete sends the conversation and returns the assistant's reply text.
	Complete(ctx context.Context, messages []Message) (string, error)
}

// RealClient is the raw HTTP implementation of Client.
type RealClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	budget     *rate.Limiter
}

// NewClient creates a RealClient. Empty baseURL and model fall back to the
// OpenAI defaults. The outbound budget allows 1 call per second with a burst
// of 5, shared by every caller in the process.
func NewClient(apiKey, baseURL, model string) *RealClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &RealClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		budget:     rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

var _ Client = (*RealClient)(nil)

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete POSTs /chat/completions and extracts the first choice's text.
func (c *RealClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}
	if !c.budget.Allow() {
		return "", ErrOverBudget
	}

	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   600,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed completionResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("llm: invalid response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("llm: status %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("llm: status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("llm: empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}
