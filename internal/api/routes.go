package api

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func (s *Server) setupRoutes() {
	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(s.config.Security.AllowOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	s.app.Get("/api/health", s.handleHealth)
	s.app.Get("/metrics", s.handleMetrics)
	s.app.Get("/api/metrics", s.handleMetricsJSON)

	s.app.Post("/extract", s.handleExtract)
	s.app.Get("/brokers", s.handleBrokers)
	s.app.Get("/broker-address", s.handleBrokerAddress)
	s.app.Post("/save-review", s.handleSaveReview)
	s.app.Post("/download-review-pdf", s.handleDownloadReviewPDF)

	// Upload/review page: static dir when present, inline fallback otherwise.
	webDir := s.config.Server.WebDir
	if webDir != "" {
		if _, err := os.Stat(webDir); err == nil {
			s.app.Static("/", webDir)
			return
		}
	}

	s.app.Get("/", func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/html; charset=utf-8")
		return c.SendString(`<!DOCTYPE html>
<html>
<head><title>Purchase Order Extractor</title></head>
<body style="font-family: sans-serif; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Purchase Order Extractor</h1>
<p>Web UI files not found. Please ensure the web directory exists.</p>
<p>The API is still available: POST a PDF to <code>/extract</code>.</p>
</body>
</html>`)
	})
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Address, s.config.Server.Port)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.app.ShutdownWithContext(ctx)
}
