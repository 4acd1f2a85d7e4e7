package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port        string
	UploadDir   string
	ConfigPath  string
	MaxUploadMB int64
	FrontendDir string
	LogLevel    slog.Level
	Location    *time.Location
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_MB", "16"), 10, 64)
	if err != nil || maxUpload <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be a positive integer, got %q", os.Getenv("MAX_UPLOAD_MB"))
	}

	loc := time.Local
	if name := os.Getenv("TZ_NAME"); name != "" {
		if loc, err = time.LoadLocation(name); err != nil {
			return nil, fmt.Errorf("TZ_NAME: %w", err)
		}
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		ConfigPath:  getEnv("CONFIG_PATH", "config/dezhongtang.json"),
		MaxUploadMB: maxUpload,
		FrontendDir: os.Getenv("FRONTEND_DIR"),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
		Location:    loc,
	}, nil
}

// MaxUploadBytes returns the upload size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
