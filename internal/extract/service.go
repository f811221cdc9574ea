package extract

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wasteexperts/pdf-extractor/internal/config"
	apperrors "github.com/wasteexperts/pdf-extractor/internal/errors"
	"github.com/wasteexperts/pdf-extractor/internal/llm"
	"github.com/wasteexperts/pdf-extractor/internal/metrics"
)

// Completer is the capability this service needs from the external AI:
// given document bytes and an instruction, return best-effort text.
// Satisfied by *llm.Client; tests swap in a deterministic stub.
type Completer interface {
	CompleteDocument(ctx context.Context, doc []byte, mediaType, instruction string) (string, llm.Usage, error)
}

// Service orchestrates one extraction: rate limit, credential check,
// completion call, normalization.
type Service struct {
	cfg       config.AnthropicConfig
	completer Completer
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewService creates an extraction service around the given completer.
func NewService(cfg config.AnthropicConfig, completer Completer, logger *zap.Logger) *Service {
	var limiter *rate.Limiter
	if cfg.RPM > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RPM)/60.0), burst)
	}

	return &Service{
		cfg:       cfg,
		completer: completer,
		limiter:   limiter,
		logger:    logger,
	}
}

// Extract runs a single upload through the completion service and returns
// the normalized payload. Exactly one round trip; failures propagate
// without retry or partial results.
func (s *Service) Extract(ctx context.Context, doc []byte, mediaType string) (Payload, error) {
	if s.cfg.APIKey == "" {
		return Payload{}, apperrors.ErrAPIKeyMissing
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return Payload{}, apperrors.Wrap(err, apperrors.ErrCompletionFailed.Code, apperrors.ErrCompletionFailed.Message)
		}
	}

	text, usage, err := s.completer.CompleteDocument(ctx, doc, mediaType, BuildPrompt())
	if err != nil {
		s.logger.Error("Completion call failed", zap.Error(err))
		return Payload{}, apperrors.Wrap(err, apperrors.ErrCompletionFailed.Code, apperrors.ErrCompletionFailed.Message)
	}

	metrics.RecordTokens(int64(usage.InputTokens), int64(usage.OutputTokens))

	payload, err := Normalize(text)
	if err != nil {
		s.logger.Warn("Completion text was not parseable JSON",
			zap.Int("response_len", len(text)),
		)
		return Payload{}, err
	}

	s.logger.Info("Extraction complete",
		zap.String("supplier", payload.Supplier),
		zap.Bool("supplier_found", payload.SupplierFound),
		zap.Int("input_tokens", usage.InputTokens),
		zap.Int("output_tokens", usage.OutputTokens),
	)

	return payload, nil
}
