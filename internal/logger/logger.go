// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"
)

var (
	defaultLogger atomic.Pointer[slog.Logger]
	logLevel      = new(slog.LevelVar)
)

func init() {
	// Silent until Init is called.
	defaultLogger.Store(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel})))
}

// Init installs a text logger writing to output, filtered by cfg.
// It may be called again to reconfigure.
func Init(cfg Config, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	cfg.process()
	logLevel.Set(cfg.level)

	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	base := slog.NewTextHandler(output, &opts)
	defaultLogger.Store(slog.New(newFilteringHandler(base, &cfg)))

	// Written through the base handler: PC=0 carries no source to filter on.
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
	r.AddAttrs(slog.String("level", cfg.level.String()))
	_ = base.Handle(context.Background(), r)
}

// Setup opens cfg.LogFilePath (empty or "-" means stderr) and calls Init.
// The returned closer releases the log file.
func Setup(cfg Config) (io.Closer, error) {
	if cfg.LogFilePath == "" || cfg.LogFilePath == "-" {
		Init(cfg, os.Stderr)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
	}
	Init(cfg, f)
	return f, nil
}

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l := defaultLogger.Load()
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs a debug message carrying a filterable tag.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	return defaultLogger.Load()
}
