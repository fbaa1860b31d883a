package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrUnknownFormat is returned for log formats other than json and console.
var ErrUnknownFormat = errors.New("log format must be json or console")

// ValidateFormat reports whether format is a supported encoder name.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatConsole:
		return nil
	default:
		return fmt.Errorf("%w, got %q", ErrUnknownFormat, format)
	}
}

// New creates a production-ready structured logger. JSON output is the
// default; console output is meant for interactive runs.
func New(format string) (*zap.Logger, error) {
	if format == "" {
		format = FormatJSON
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = format
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
