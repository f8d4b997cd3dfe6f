package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-builder/internal/logger"
	"resume-builder/pkg/ai/formatters"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, p formatters.Prompt) (string, error)
}

// Client calls an internal ai-service over its chat endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Backoff is the delay before the first retry; it doubles per attempt.
	Backoff time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: 60 * time.Second}, Backoff: time.Second}
}

type chatRequest struct {
	Agent       string  `json:"agent"`
	Input       string  `json:"input"`
	Temperature float32 `json:"temperature,omitempty"`
	MaxTokens   int32   `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

func (c *Client) Generate(ctx context.Context, p formatters.Prompt) (string, error) {
	b, err := json.Marshal(chatRequest{Agent: "auto", Input: p.Text, Temperature: p.Temperature, MaxTokens: p.MaxOutputTokens})
	if err != nil {
		return "", err
	}
	logger.Debug().Str("kind", p.Kind).Str("url", c.BaseURL+"/v1/chat").Msg("ai.client: generate")

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}
	var out chatResponse
	if err := json.Unmarshal(rb, &out); err != nil {
		return "", fmt.Errorf("ai-service returned invalid json: %w", err)
	}
	if out.Output == "" {
		return "", fmt.Errorf("ai-service returned no text")
	}
	return out.Output, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
// Only transport errors are retried.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := c.Backoff << i
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
