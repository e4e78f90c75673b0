package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// #region config
// Config selects the log level and destination.
type Config struct {
	Level string // debug, info, warn, error
	File  string // JSON log file; empty means no file
	Debug bool   // human-readable development logs on stderr
}

// #endregion config

// #region new
// New builds the process logger. The console owns stdout, so without a file
// or Debug the logger discards everything.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Debug {
		dev := zap.NewDevelopmentConfig()
		dev.OutputPaths = []string{"stderr"}
		logger, err := dev.Build()
		if err != nil {
			return nil, fmt.Errorf("build debug logger: %w", err)
		}
		return logger, nil
	}
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(levelOrInfo(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
	}

	prod := zap.NewProductionConfig()
	prod.Level = zap.NewAtomicLevelAt(level)
	prod.OutputPaths = []string{cfg.File}
	prod.ErrorOutputPaths = []string{"stderr"}
	prod.EncoderConfig.TimeKey = "ts"
	prod.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	prod.Sampling = nil

	logger, err := prod.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// #endregion new

// #region helpers
func levelOrInfo(s string) string {
	if s == "" {
		return "info"
	}
	return s
}

// #endregion helpers
