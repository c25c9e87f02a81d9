// Package zaplog implements the domain Logger on top of go.uber.org/zap.
package zaplog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/gettor/internal/domain/interfaces"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and optional log file
type Config struct {
	Level    string
	FilePath string
}

// Logger adapts a zap logger to interfaces.Logger
type Logger struct {
	base    *zap.Logger
	level   zap.AtomicLevel
	logFile *os.File
}

var _ interfaces.Logger = (*Logger)(nil)

// New builds a logger writing to stderr and, if cfg.FilePath is set, to that file
func New(cfg Config) (*Logger, error) {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is like New but writes console output to out
func NewWithOutput(cfg Config, out io.Writer) (*Logger, error) {
	l := &Logger{level: zap.NewAtomicLevelAt(ParseLevel(cfg.Level))}

	cores := []zapcore.Core{
		zapcore.NewCore(newLineEncoder(), zapcore.AddSync(out), l.level),
	}

	if path := strings.TrimSpace(cfg.FilePath); path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, err
		}
		l.logFile = f
		cores = append(cores, zapcore.NewCore(newLineEncoder(), zapcore.AddSync(f), l.level))
	}

	l.base = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

func openLogFile(path string) (*os.File, error) {
	cleaned := filepath.Clean(path)
	if dir := filepath.Dir(cleaned); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory %q: %w", dir, err)
		}
	}

	//nolint:gosec // G304: log path comes from configuration
	f, err := os.OpenFile(cleaned, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", cleaned, err)
	}
	return f, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLevel changes the level without rebuilding the logger
func (l *Logger) SetLevel(level string) {
	l.level.SetLevel(ParseLevel(level))
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.base.Debug(msg, toZap(fields)...)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.base.Info(msg, toZap(fields)...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.base.Warn(msg, toZap(fields)...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.base.Error(msg, toZap(fields)...)
}

// Close flushes buffered entries and closes the log file, if any
func (l *Logger) Close() error {
	_ = l.base.Sync()
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

func toZap(fields []interfaces.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}
