package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// debugFilter traces filtering decisions to stderr.
var debugFilter = false

// SetDebugFilter toggles tracing of filter decisions.
func SetDebugFilter(on bool) {
	debugFilter = on
}

func debugf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// filteringHandler wraps a base slog.Handler to add package/file/tag filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	if pkg, file, ok := source(r); ok {
		if !h.cfg.packages.allows(pkg) || !h.cfg.files.allows(file) {
			if debugFilter {
				debugf("[FILTER] dropped %q from %s/%s", r.Message, pkg, file)
			}
			return nil
		}
	}

	tag, tagged := recordTag(r)
	switch {
	case tagged && !h.cfg.tags.allows(tag):
		if debugFilter {
			debugf("[FILTER] dropped %q with tag %q", r.Message, tag)
		}
		return nil
	case !tagged && h.cfg.tags.enabled != nil:
		// Specific tags requested, untagged messages are noise.
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// source resolves the package directory and file name a record came from.
func source(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

func recordTag(r slog.Record) (string, bool) {
	var tag string
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			found = true
			return false
		}
		return true
	})
	return tag, found
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
