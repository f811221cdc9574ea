package extract

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wasteexperts/pdf-extractor/internal/config"
	apperrors "github.com/wasteexperts/pdf-extractor/internal/errors"
	"github.com/wasteexperts/pdf-extractor/internal/llm"
)

// stubCompleter returns canned text instead of calling the real API.
type stubCompleter struct {
	text        string
	err         error
	calls       int
	instruction string
}

func (s *stubCompleter) CompleteDocument(ctx context.Context, doc []byte, mediaType, instruction string) (string, llm.Usage, error) {
	s.calls++
	s.instruction = instruction
	if s.err != nil {
		return "", llm.Usage{}, s.err
	}
	return s.text, llm.Usage{InputTokens: 100, OutputTokens: 20}, nil
}

func serviceConfig(key string) config.AnthropicConfig {
	return config.AnthropicConfig{
		APIKey:    key,
		Model:     "claude-opus-4-1",
		MaxTokens: 1800,
		Timeout:   5,
	}
}

func TestExtract(t *testing.T) {
	stub := &stubCompleter{text: `{"supplier": "go green", "purchase_order_number": "PO-9981"}`}
	svc := NewService(serviceConfig("sk-test"), stub, zap.NewNop())

	p, err := svc.Extract(context.Background(), []byte("%PDF"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "GO GREEN", p.Supplier)
	assert.True(t, p.SupplierFound)
	assert.Equal(t, "PO-9981", p.PurchaseOrderNumber)
}

func TestExtractPromptCarriesBrokerList(t *testing.T) {
	stub := &stubCompleter{text: `{}`}
	svc := NewService(serviceConfig("sk-test"), stub, zap.NewNop())

	_, err := svc.Extract(context.Background(), []byte("%PDF"), "application/pdf")
	require.NoError(t, err)

	assert.Contains(t, stub.instruction, "GO GREEN")
	assert.Contains(t, stub.instruction, "BIFFA WASTE SERVICES LIMITED")
	assert.True(t, strings.Contains(stub.instruction, `"document_type"`))
}

func TestExtractMissingAPIKey(t *testing.T) {
	stub := &stubCompleter{text: `{}`}
	svc := NewService(serviceConfig(""), stub, zap.NewNop())

	_, err := svc.Extract(context.Background(), []byte("%PDF"), "application/pdf")
	require.Error(t, err)

	assert.Equal(t, apperrors.ErrAPIKeyMissing.Code, apperrors.GetCode(err))
	assert.Equal(t, 0, stub.calls, "no network call may be attempted without a credential")
}

func TestExtractCompletionFailure(t *testing.T) {
	stub := &stubCompleter{err: fmt.Errorf("API error (status 529): overloaded")}
	svc := NewService(serviceConfig("sk-test"), stub, zap.NewNop())

	_, err := svc.Extract(context.Background(), []byte("%PDF"), "application/pdf")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCompletionFailed.Code, apperrors.GetCode(err))
	assert.Equal(t, 1, stub.calls, "exactly one round trip, no retries")
}

func TestExtractUnparsableResponse(t *testing.T) {
	stub := &stubCompleter{text: "Sorry, I cannot process this."}
	svc := NewService(serviceConfig("sk-test"), stub, zap.NewNop())

	_, err := svc.Extract(context.Background(), []byte("%PDF"), "application/pdf")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrUnparsableResponse.Code, apperrors.GetCode(err))
}

func TestExtractRespectsRateLimiterConfig(t *testing.T) {
	cfg := serviceConfig("sk-test")
	cfg.RPM = 6000 // 100/s, never blocks in tests
	cfg.Burst = 10

	stub := &stubCompleter{text: `{}`}
	svc := NewService(cfg, stub, zap.NewNop())
	require.NotNil(t, svc.limiter)

	for i := 0; i < 3; i++ {
		_, err := svc.Extract(context.Background(), []byte("%PDF"), "application/pdf")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, stub.calls)
}
