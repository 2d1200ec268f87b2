package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	errInvalidPort    = errors.New("config: invalid PORT number")
	errInvalidTimeout = errors.New("config: FETCH_TIMEOUT_SECONDS must be 1-120")
	errInvalidRate    = errors.New("config: RATE_LIMIT_RPS must be positive")
)

// Config holds all application configuration loaded from environment variables.
// API credentials live here and are injected into the clients that need them;
// nothing below the transport layer reads the environment directly.
type Config struct {
	Port            string
	GinMode         string
	DataDir         string
	PageSpeedAPIKey string
	PageSpeedURL    string
	OpenAIAPIKey    string
	FetchTimeout    time.Duration
	RateLimitRPS    float64
	RateLimitBurst  float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8082"),
		GinMode:         getEnv("GIN_MODE", "release"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		PageSpeedAPIKey: os.Getenv("PAGESPEED_API_KEY"),
		PageSpeedURL:    getEnv("PAGESPEED_API_URL", "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		FetchTimeout:    time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		RateLimitRPS:    getEnvAsFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst:  getEnvAsFloat("RATE_LIMIT_BURST", 5),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	secs := int(c.FetchTimeout / time.Second)
	if secs < 1 || secs > 120 {
		return fmt.Errorf("%w: got %d", errInvalidTimeout, secs)
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("%w: got %v", errInvalidRate, c.RateLimitRPS)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsFloat(key string, fallback float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
