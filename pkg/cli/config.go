package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings that are not part of the image transform
// itself. The level count and opacity threshold are fixed in package depth.
type Config struct {
	Debug          bool
	Workers        int
	JPEGQuality    int
	PreviewBackend string // "", "inline" or "kitty"
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Workers:     runtime.GOMAXPROCS(0),
		JPEGQuality: 92,
	}
}

// LoadConfig reads an optional .env file from the working directory and then
// the DEPTHIFY_* environment variables. Variables already set in the
// environment win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return configFromEnv()
}

func configFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("DEPTHIFY_DEBUG"); ok {
		b, err := parseBoolLike(v)
		if err != nil {
			return Config{}, fmt.Errorf("DEPTHIFY_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	if v, ok := os.LookupEnv("DEPTHIFY_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("DEPTHIFY_WORKERS: invalid worker count %q", v)
		}
		cfg.Workers = n
	}
	if v, ok := os.LookupEnv("DEPTHIFY_JPEG_QUALITY"); ok && v != "" {
		q, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || q < 1 || q > 100 {
			return Config{}, fmt.Errorf("DEPTHIFY_JPEG_QUALITY: want 1-100, got %q", v)
		}
		cfg.JPEGQuality = q
	}
	if v, ok := os.LookupEnv("DEPTHIFY_PREVIEW_BACKEND"); ok {
		switch b := strings.ToLower(strings.TrimSpace(v)); b {
		case "", "inline", "kitty":
			cfg.PreviewBackend = b
		default:
			return Config{}, fmt.Errorf("DEPTHIFY_PREVIEW_BACKEND: unknown backend %q", v)
		}
	}
	return cfg, nil
}

// parseBoolLike accepts common truthy/falsy spellings.
func parseBoolLike(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "", "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean: %q", s)
	}
}
