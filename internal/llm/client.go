// Package llm provides a minimal client for the Anthropic Messages API.
package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wasteexperts/pdf-extractor/internal/config"
)

const messagesPath = "/v1/messages"

// Client provides access to the Anthropic Messages API
type Client struct {
	cfg    config.AnthropicConfig
	client *http.Client
}

// NewClient creates a new API client
func NewClient(cfg config.AnthropicConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// ContentBlock is one block of message content: text or a base64 document
type ContentBlock struct {
	Type   string          `json:"type"`
	Text   string          `json:"text,omitempty"`
	Source *DocumentSource `json:"source,omitempty"`
}

// DocumentSource carries a base64-encoded document
type DocumentSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// Message represents one conversation turn
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// MessagesRequest represents an API request
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// MessagesResponse represents an API response
type MessagesResponse struct {
	ID         string `json:"id"`
	Model      string `json:"model"`
	Role       string `json:"role"`
	StopReason string `json:"stop_reason"`
	Content    []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage Usage `json:"usage"`
}

// Usage reports token consumption for one call
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateMessage sends a messages request. One round trip, no retries.
func (c *Client) CreateMessage(ctx context.Context, req MessagesRequest) (*MessagesResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", c.cfg.Version)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("API error (status %d, %s): %s", resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result MessagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// CompleteDocument sends a base64 document plus a text instruction and
// returns the model's text output.
func (c *Client) CompleteDocument(ctx context.Context, doc []byte, mediaType, instruction string) (string, Usage, error) {
	req := MessagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		Messages: []Message{
			{
				Role: "user",
				Content: []ContentBlock{
					{
						Type: "document",
						Source: &DocumentSource{
							Type:      "base64",
							MediaType: mediaType,
							Data:      base64.StdEncoding.EncodeToString(doc),
						},
					},
					{Type: "text", Text: instruction},
				},
			},
		},
	}

	resp, err := c.CreateMessage(ctx, req)
	if err != nil {
		return "", Usage{}, err
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, resp.Usage, nil
		}
	}

	return "", resp.Usage, fmt.Errorf("no text content in response")
}

// GetModel returns the configured model
func (c *Client) GetModel() string {
	return c.cfg.Model
}
