// Package groq calls the Groq chat-completions API (OpenAI-compatible).
// Tool use is not negotiated at the API level; the agent instructs the model
// via the system prompt to answer with a JSON tool invocation, and the
// response interpreter handles whatever comes back.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/foodiespot/foodiebot/internal/core"
)

const BaseURL = "https://api.groq.com/openai/v1"

// Request knobs matching the original deployment: deterministic-ish output,
// bounded reply length.
const (
	temperature = 0.1
	maxTokens   = 500
)

// ChatRequest is the request body for chat completions.
type ChatRequest struct {
	Model       string         `json:"model"`
	Messages    []core.Message `json:"messages"`
	Temperature float64        `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
}

// ChatResponse is the response from chat completions.
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
			Role    string          `json:"role"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client calls the Groq API.
type Client struct {
	APIKey string
	Model  string
	HTTP   *http.Client
}

// NewClient creates a client with the given API key and model.
func NewClient(apiKey, model string) *Client {
	return &Client{
		APIKey: apiKey,
		Model:  model,
		HTTP:   http.DefaultClient,
	}
}

// ChatCompletion sends messages to Groq and returns the assistant reply
// content. Retries with exponential backoff on network errors, rate limits,
// and 5xx; the caller's ctx deadline bounds the whole exchange.
func (c *Client) ChatCompletion(ctx context.Context, messages []core.Message) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("groq: API key not set")
	}
	if c.Model == "" {
		return "", fmt.Errorf("groq: model not set")
	}
	body := ChatRequest{Model: c.Model, Messages: messages, Temperature: temperature, MaxTokens: maxTokens}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	var resp *http.Response
	var errDo error
	maxRetries := 3
	backoff := 1 * time.Second

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			backoff *= 2
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, BaseURL+"/chat/completions", bytes.NewReader(raw))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.APIKey)

		resp, errDo = c.HTTP.Do(req)
		if errDo != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			resp = nil
			continue
		}
		break
	}
	if errDo != nil {
		return "", errDo
	}
	if resp == nil {
		return "", fmt.Errorf("groq: request failed after retries")
	}

	defer resp.Body.Close()
	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq: HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}
	var out ChatResponse
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		return "", fmt.Errorf("groq: decode: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("groq: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("groq: no choices in response")
	}
	return parseContent(out.Choices[0].Message.Content), nil
}

// parseContent parses API content that may be a string, null, or an array of
// parts (e.g. [{"type":"text","text":"..."}]).
func parseContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &parts); err == nil {
		var b strings.Builder
		for _, p := range parts {
			if p.Type == "text" {
				b.WriteString(p.Text)
			}
		}
		return b.String()
	}
	return ""
}
