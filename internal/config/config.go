package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default; the service starts with an empty environment.
type Config struct {
	// Server
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Rate limiting: maximum requests per second across the HTTP surface.
	// Zero or negative disables throttling entirely.
	RateLimit int
}

// Load reads an optional .env file, then the process environment.
// The defaults reproduce the documented wire behavior with nothing set:
// listen on all interfaces, port 5000.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Host:            getEnv("HTTP_HOST", "0.0.0.0"),
		Port:            getEnv("HTTP_PORT", "5000"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		RateLimit:       getInt("RATE_LIMIT", 100),
	}

	// Malformed ints and durations above fall back to defaults, but an
	// unusable port can only fail at bind time with a worse message.
	if _, err := net.LookupPort("tcp", cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT %q: %w", cfg.Port, err)
	}

	return cfg, nil
}

// Addr is the listen address handed to http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
