package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wasteexperts/pdf-extractor/internal/api"
	"github.com/wasteexperts/pdf-extractor/internal/config"
	"github.com/wasteexperts/pdf-extractor/internal/extract"
	"github.com/wasteexperts/pdf-extractor/internal/llm"
	"github.com/wasteexperts/pdf-extractor/internal/review"
)

var (
	configPath = flag.String("config", "", "Path to config file")
	listenAddr = flag.String("addr", "", "Override listen address (host:port)")
	devLog     = flag.Bool("dev", false, "Use development logging")
)

func main() {
	flag.Parse()

	config.LoadEnvFiles()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *listenAddr != "" {
		host, port, err := net.SplitHostPort(*listenAddr)
		if err != nil {
			log.Fatalf("Invalid -addr %q: %v", *listenAddr, err)
		}
		p, err := strconv.Atoi(port)
		if err != nil {
			log.Fatalf("Invalid -addr port %q: %v", port, err)
		}
		cfg.Server.Address = host
		cfg.Server.Port = p
	}

	logger, err := newLogger(*devLog)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Anthropic.APIKey == "" {
		logger.Warn("ANTHROPIC_API_KEY is not set; extraction requests will be rejected until it is configured")
	}

	client := llm.NewClient(cfg.Anthropic)
	extractor := extract.NewService(cfg.Anthropic, client, logger)
	reviews := review.NewStore(time.Duration(cfg.Review.TTLMinutes) * time.Minute)

	server := api.New(cfg, extractor, reviews, logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("address", cfg.Server.Address),
		zap.Int("port", cfg.Server.Port),
		zap.String("url", fmt.Sprintf("http://localhost:%d", cfg.Server.Port)),
		zap.String("model", cfg.Anthropic.Model),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	if err := server.Shutdown(); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
