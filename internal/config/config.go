package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the extractor service
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Review    ReviewConfig    `mapstructure:"review"`
	Security  SecurityConfig  `mapstructure:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Address      string `mapstructure:"address"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	MaxUploadMB  int    `mapstructure:"max_upload_mb"`
	WebDir       string `mapstructure:"web_dir"`
}

// AnthropicConfig holds settings for the external extraction service
type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Version   string `mapstructure:"version"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
	Timeout   int    `mapstructure:"timeout"`
	RPM       int    `mapstructure:"rpm"`
	Burst     int    `mapstructure:"burst"`
}

// ReviewConfig holds review snapshot settings
type ReviewConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

// SecurityConfig holds security settings
type SecurityConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Load loads configuration from file, env, and defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	// Environment variables (PDFX_SERVER_PORT, PDFX_ANTHROPIC_API_KEY, etc.)
	v.SetEnvPrefix("PDFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Viper does not see bare env vars like ANTHROPIC_API_KEY
	loadEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.max_upload_mb", 20)
	v.SetDefault("server.web_dir", "./web")

	v.SetDefault("anthropic.base_url", "https://api.anthropic.com")
	v.SetDefault("anthropic.version", "2023-06-01")
	v.SetDefault("anthropic.model", "claude-opus-4-1")
	v.SetDefault("anthropic.max_tokens", 1800)
	v.SetDefault("anthropic.timeout", 120)
	v.SetDefault("anthropic.rpm", 30)
	v.SetDefault("anthropic.burst", 5)

	v.SetDefault("review.ttl_minutes", 60)

	v.SetDefault("security.allow_origins", []string{"*"})
}

func loadEnvOverrides(cfg *Config) {
	if cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = ResolveEnvWithAliases("PDFX_ANTHROPIC_API_KEY")
	}

	// Bare PORT (PaaS convention) only applies when the prefixed form is unset
	if os.Getenv("PDFX_SERVER_PORT") == "" {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			cfg.Server.Port = port
		}
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.Server.MaxUploadMB < 1 {
		return fmt.Errorf("invalid max upload size: %dMB", cfg.Server.MaxUploadMB)
	}
	if cfg.Anthropic.MaxTokens < 1 {
		return fmt.Errorf("invalid anthropic max_tokens: %d", cfg.Anthropic.MaxTokens)
	}
	if cfg.Anthropic.Timeout < 1 {
		return fmt.Errorf("invalid anthropic timeout: %ds", cfg.Anthropic.Timeout)
	}
	// A missing API key is not fatal at load time: the server still
	// serves the UI and broker endpoints, and /extract reports a
	// configuration error instead.
	return nil
}
