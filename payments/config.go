package payments

import (
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// Config is a configuration for the batch processor
type Config struct {
	// InputPath is the batch file processed in single-run mode.
	InputPath string
	// ExpiryTZ is an IANA timezone name for expiry checks; empty means local time.
	ExpiryTZ string
	LogLevel string
	// HTTPAddr switches the processor into server mode when set.
	HTTPAddr string
	// SpoolDir receives uploaded batches in server mode.
	SpoolDir string
	// PANHashKey peppers the card fingerprints written to logs.
	PANHashKey string
}

func DefaultConfig() *Config {
	return &Config{
		InputPath:  "inputs.csv",
		LogLevel:   "info",
		SpoolDir:   "spool",
		PANHashKey: "dev-secret-pepper",
	}
}

// ConfigFromEnv starts from DefaultConfig and applies PAYMENTS_* overrides.
func ConfigFromEnv() *Config {
	def := DefaultConfig()
	return &Config{
		InputPath:  getenv("PAYMENTS_INPUT", def.InputPath),
		ExpiryTZ:   getenv("PAYMENTS_TZ", def.ExpiryTZ),
		LogLevel:   getenv("PAYMENTS_LOG_LEVEL", def.LogLevel),
		HTTPAddr:   getenv("PAYMENTS_HTTP_ADDR", def.HTTPAddr),
		SpoolDir:   getenv("PAYMENTS_SPOOL_DIR", def.SpoolDir),
		PANHashKey: getenv("PAYMENTS_PAN_HASH_KEY", def.PANHashKey),
	}
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Location resolves ExpiryTZ. An empty zone is local time.
func (c *Config) Location() (*time.Location, error) {
	if c.ExpiryTZ == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.ExpiryTZ)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
