package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wasteexperts/pdf-extractor/internal/config"
	"github.com/wasteexperts/pdf-extractor/internal/extract"
	"github.com/wasteexperts/pdf-extractor/internal/review"
)

const version = "0.1.0"

type Server struct {
	app       *fiber.App
	config    *config.Config
	extractor *extract.Service
	reviews   *review.Store
	logger    *zap.Logger
}

func New(cfg *config.Config, extractor *extract.Service, reviews *review.Store, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    cfg.Server.MaxUploadMB * 1024 * 1024,
	})

	s := &Server{
		app:       app,
		config:    cfg,
		extractor: extractor,
		reviews:   reviews,
		logger:    logger,
	}

	s.setupRoutes()
	return s
}

type saveReviewResponse struct {
	Token string `json:"token"`
}

type downloadReviewRequest struct {
	Token string `json:"token"`
}
