// Package logger builds the zap loggers used by the eput tooling.
package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the default logger used throughout the code base.
type Logger = zap.SugaredLogger

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	Level string `koanf:"level"`
	// DisableCaller stops annotating logs with the calling function's
	// file name and line number.
	DisableCaller bool `koanf:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	DisableStacktrace bool `koanf:"disableStacktrace"`
	// Encoding sets the logger's encoding. Valid values are "json" and
	// "console".
	Encoding string `koanf:"encoding"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to
	// write logging output to.
	OutputPaths []string `koanf:"outputPaths"`
}

// DefaultCfg is the default configuration of a root logger.
var DefaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stdout"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// NewRootLogger creates a new root logger from the provided
// configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	root, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	return root.Sugar(), nil
}

// NewNopLogger returns a logger that discards everything. Useful as a
// default in tests.
func NewNopLogger() *Logger {
	return zap.NewNop().Sugar()
}
