package api

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wasteexperts/pdf-extractor/internal/brokers"
	apperrors "github.com/wasteexperts/pdf-extractor/internal/errors"
	"github.com/wasteexperts/pdf-extractor/internal/extract"
	"github.com/wasteexperts/pdf-extractor/internal/metrics"
	"github.com/wasteexperts/pdf-extractor/internal/pdf"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"version":   version,
		"timestamp": time.Now().Unix(),
	})
}

func (s *Server) handleMetrics(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/plain; version=0.0.4")
	return c.SendString(metrics.Prometheus())
}

func (s *Server) handleMetricsJSON(c *fiber.Ctx) error {
	return c.JSON(metrics.GetSnapshot())
}

// errorStatus maps the error taxonomy onto HTTP statuses: configuration
// errors are 503, external-service failures 502, interpretation failures
// 422, everything else 500.
func errorStatus(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrAPIKeyMissing.Code:
		return fiber.StatusServiceUnavailable
	case apperrors.ErrCompletionFailed.Code:
		return fiber.StatusBadGateway
	case apperrors.ErrUnparsableResponse.Code:
		return fiber.StatusUnprocessableEntity
	case apperrors.ErrRenderFailed.Code:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
		"code":  apperrors.GetCode(err),
	})
}

func (s *Server) handleExtract(c *fiber.Ctx) error {
	file, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": apperrors.ErrNoDocument.Message,
			"code":  apperrors.ErrNoDocument.Code,
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": apperrors.ErrNotPDF.Message,
			"code":  apperrors.ErrNotPDF.Code,
		})
	}

	src, err := file.Open()
	if err != nil {
		return errorJSON(c, apperrors.Wrap(err, apperrors.ErrBadRequest.Code, "failed to read upload"))
	}
	defer src.Close()

	doc, err := io.ReadAll(src)
	if err != nil {
		return errorJSON(c, apperrors.Wrap(err, apperrors.ErrBadRequest.Code, "failed to read upload"))
	}

	start := time.Now()
	payload, err := s.extractor.Extract(c.Context(), doc, "application/pdf")
	metrics.RecordResponseTime(time.Since(start))

	if err != nil {
		metrics.RecordExtraction(false)
		switch apperrors.GetCode(err) {
		case apperrors.ErrAPIKeyMissing.Code:
			metrics.RecordConfigFailure()
		case apperrors.ErrUnparsableResponse.Code:
			metrics.RecordInterpretationFailure()
		}
		s.logger.Error("Extraction failed",
			zap.String("filename", file.Filename),
			zap.String("code", apperrors.GetCode(err)),
			zap.Error(err),
		)
		return errorJSON(c, err)
	}

	metrics.RecordExtraction(true)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    payload,
	})
}

func (s *Server) handleBrokers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"brokers": brokers.All()})
}

func (s *Server) handleBrokerAddress(c *fiber.Ctx) error {
	name := c.Query("name")
	return c.JSON(fiber.Map{
		"name":    name,
		"address": brokers.Address(name),
	})
}

func (s *Server) handleSaveReview(c *fiber.Ctx) error {
	var payload extract.Payload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid review payload",
			"code":  apperrors.ErrBadRequest.Code,
		})
	}

	// Reviewer edits go through the same normalization as fresh
	// extractions, so supplier validation reflects the final text.
	payload = extract.NormalizePayload(payload)

	token := s.reviews.Save(payload)
	metrics.RecordReviewSaved()

	s.logger.Info("Review saved",
		zap.String("token", token),
		zap.String("supplier", payload.Supplier),
	)

	return c.Status(fiber.StatusCreated).JSON(saveReviewResponse{Token: token})
}

func (s *Server) handleDownloadReviewPDF(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no data provided",
			"code":  apperrors.ErrBadRequest.Code,
		})
	}

	var req downloadReviewRequest
	var payload extract.Payload

	if err := json.Unmarshal(body, &req); err == nil && req.Token != "" {
		stored, ok := s.reviews.Load(req.Token)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": apperrors.ErrReviewNotFound.Message,
				"code":  apperrors.ErrReviewNotFound.Code,
			})
		}
		payload = stored
	} else if err := json.Unmarshal(body, &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid review payload",
			"code":  apperrors.ErrBadRequest.Code,
		})
	}

	out, err := pdf.Render(payload)
	if err != nil {
		metrics.RecordPDFRender(false)
		s.logger.Error("Review PDF generation failed", zap.Error(err))
		return errorJSON(c, err)
	}

	metrics.RecordPDFRender(true)

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reviewFilename(payload)))
	return c.Send(out)
}

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// reviewFilename builds "Supplier - PO.pdf" from the payload, falling back
// to a generic name when neither part is usable.
func reviewFilename(p extract.Payload) string {
	sanitize := func(s string) string {
		if s == extract.Sentinel {
			return ""
		}
		s = unsafeFilenameChars.ReplaceAllString(s, "")
		s = strings.TrimSpace(s)
		if len(s) > 30 {
			s = strings.TrimSpace(s[:30])
		}
		return strings.Trim(s, " -")
	}

	var parts []string
	if supplier := sanitize(p.Supplier); supplier != "" {
		parts = append(parts, supplier)
	}
	if po := sanitize(p.PurchaseOrderNumber); po != "" {
		parts = append(parts, po)
	}

	if len(parts) == 0 {
		return "purchase-order-review.pdf"
	}
	return strings.Join(parts, " - ") + ".pdf"
}
