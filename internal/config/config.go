package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"opentranscribe/internal/utils"
)

// AppIdentifier names the per-user application data directory.
const AppIdentifier = "com.opentranscribe.app"

const (
	EnvDataDir  = "OPENTRANSCRIBE_DATA_DIR"
	EnvLogLevel = "OPENTRANSCRIBE_LOG_LEVEL"
)

// Config holds the developer-facing settings read at startup.
type Config struct {
	// DataDirOverride replaces the development data directory when set.
	// Production builds ignore it.
	DataDirOverride string
	LogLevel        logger.LogLevel
}

// Load reads an optional project .env and then the process environment.
func Load() (Config, error) {
	if err := utils.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DataDirOverride: strings.TrimSpace(getenv(EnvDataDir)),
		LogLevel:        logger.INFO,
	}

	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		level, err := ParseLogLevel(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func ParseLogLevel(s string) (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return logger.TRACE, nil
	case "debug":
		return logger.DEBUG, nil
	case "info":
		return logger.INFO, nil
	case "warn", "warning":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
