package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasteexperts/pdf-extractor/internal/config"
)

func testConfig(baseURL string) config.AnthropicConfig {
	return config.AnthropicConfig{
		APIKey:    "sk-test",
		BaseURL:   baseURL,
		Version:   "2023-06-01",
		Model:     "claude-opus-4-1",
		MaxTokens: 1800,
		Timeout:   5,
	}
}

func TestCompleteDocument(t *testing.T) {
	var gotReq MessagesRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := map[string]any{
			"id":          "msg_01",
			"model":       "claude-opus-4-1",
			"role":        "assistant",
			"stop_reason": "end_turn",
			"content":     []map[string]any{{"type": "text", "text": `{"supplier": "GO GREEN"}`}},
			"usage":       map[string]any{"input_tokens": 1200, "output_tokens": 80},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	text, usage, err := client.CompleteDocument(context.Background(), []byte("%PDF-1.4 fake"), "application/pdf", "extract fields")
	require.NoError(t, err)

	assert.Equal(t, `{"supplier": "GO GREEN"}`, text)
	assert.Equal(t, 1200, usage.InputTokens)
	assert.Equal(t, 80, usage.OutputTokens)

	// Document travels base64-encoded with the instruction after it.
	require.Len(t, gotReq.Messages, 1)
	require.Len(t, gotReq.Messages[0].Content, 2)
	doc := gotReq.Messages[0].Content[0]
	assert.Equal(t, "document", doc.Type)
	require.NotNil(t, doc.Source)
	assert.Equal(t, "base64", doc.Source.Type)
	assert.Equal(t, "application/pdf", doc.Source.MediaType)

	raw, err := base64.StdEncoding.DecodeString(doc.Source.Data)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(raw))

	assert.Equal(t, "text", gotReq.Messages[0].Content[1].Type)
	assert.Equal(t, "extract fields", gotReq.Messages[0].Content[1].Text)
}

func TestCreateMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "rate_limit_error", "message": "Too many requests"},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, _, err := client.CompleteDocument(context.Background(), []byte("x"), "application/pdf", "extract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
	assert.Contains(t, err.Error(), "status 429")
}

func TestCompleteDocumentNoText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{},
			"usage":   map[string]any{"input_tokens": 10, "output_tokens": 0},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, _, err := client.CompleteDocument(context.Background(), []byte("x"), "application/pdf", "extract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}
