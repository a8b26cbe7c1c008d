package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	dErrors "natid/pkg/domain-errors"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        slog.Level
	LogFormat       string
	ShutdownTimeout time.Duration
	// RequestTimeout bounds reading a request and writing its response.
	RequestTimeout time.Duration
	// RandomSeed, when non-zero, makes generation reproducible.
	RandomSeed uint64
}

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	return Load(os.Getenv)
}

// Load builds a Server config from getenv. Unset values take defaults;
// malformed values are reported as validation errors.
func Load(getenv func(string) string) (Server, error) {
	cfg := Server{
		Addr:            ":8080",
		LogLevel:        slog.LevelInfo,
		LogFormat:       LogFormatJSON,
		ShutdownTimeout: 10 * time.Second,
		RequestTimeout:  10 * time.Second,
	}

	if addr := getenv("NATID_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	if level := getenv("NATID_LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Server{}, dErrors.Wrap(err, dErrors.CodeValidation, "NATID_LOG_LEVEL must be debug, info, warn or error")
		}
	}

	if format := strings.ToLower(getenv("NATID_LOG_FORMAT")); format != "" {
		if format != LogFormatJSON && format != LogFormatText {
			return Server{}, dErrors.New(dErrors.CodeValidation, "NATID_LOG_FORMAT must be json or text")
		}
		cfg.LogFormat = format
	}

	for key, dst := range map[string]*time.Duration{
		"NATID_SHUTDOWN_TIMEOUT": &cfg.ShutdownTimeout,
		"NATID_REQUEST_TIMEOUT":  &cfg.RequestTimeout,
	} {
		if err := parseDuration(getenv(key), key, dst); err != nil {
			return Server{}, err
		}
	}

	if seed := getenv("NATID_RANDOM_SEED"); seed != "" {
		v, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return Server{}, dErrors.Wrap(err, dErrors.CodeValidation, "NATID_RANDOM_SEED must be an unsigned integer")
		}
		cfg.RandomSeed = v
	}

	return cfg, nil
}

func parseDuration(raw, key string, dst *time.Duration) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return dErrors.New(dErrors.CodeValidation, key+" must be a positive duration")
	}
	*dst = d
	return nil
}
