package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	DatabaseURL      string
	RedisURL         string
	AIProvider       string
	OpenAIAPIKey     string
	AnthropicAPIKey  string
	FeedbackModel    string
	FeedbackMaxToken int
	FeedbackTimeout  time.Duration
	InfoCacheTTL     time.Duration
	SeedEnabled      bool
	SeedToken        string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// FeedbackEnabled reports whether an AI credential is configured for the
// selected provider.
func (c Config) FeedbackEnabled() bool {
	switch c.AIProvider {
	case "anthropic":
		return c.AnthropicAPIKey != ""
	default:
		return c.OpenAIAPIKey != ""
	}
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LMS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "LMS Demo API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "5000")
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("feedback.model", "gpt-4o-mini")
	v.SetDefault("feedback.max_tokens", 150)
	v.SetDefault("feedback.timeout", "30s")
	v.SetDefault("info.cache_ttl", "1m")
	v.SetDefault("seed.enabled", false)

	feedbackTimeout, err := time.ParseDuration(v.GetString("feedback.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid feedback timeout: %w", err)
	}

	infoCacheTTL, err := time.ParseDuration(v.GetString("info.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid info cache ttl: %w", err)
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		DatabaseURL:      v.GetString("database.url"),
		RedisURL:         v.GetString("redis.url"),
		AIProvider:       strings.ToLower(v.GetString("ai.provider")),
		OpenAIAPIKey:     v.GetString("openai_api_key"),
		AnthropicAPIKey:  v.GetString("anthropic_api_key"),
		FeedbackModel:    v.GetString("feedback.model"),
		FeedbackMaxToken: v.GetInt("feedback.max_tokens"),
		FeedbackTimeout:  feedbackTimeout,
		InfoCacheTTL:     infoCacheTTL,
		SeedEnabled:      v.GetBool("seed.enabled"),
		SeedToken:        v.GetString("seed.token"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.FeedbackMaxToken <= 0 {
		cfg.FeedbackMaxToken = 150
	}

	return cfg, nil
}
