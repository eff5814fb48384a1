// Package logger provides configurable, tag-filtered slog logging.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Use empty or "-" for stderr.
	LogFilePath string `toml:"log_file"`

	// EnabledTags only logs messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags prevents logging messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs messages originating from these packages (if non-empty).
	// Package name is the immediate directory name (e.g., "cursor", "history").
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages prevents logging from these packages. Overrides EnabledPackages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs messages originating from these base filenames (if non-empty).
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles prevents logging from these filenames. Overrides EnabledFiles.
	DisabledFiles []string `toml:"disabled_files"`

	level    slog.Level
	tags     filter
	packages filter
	files    filter
}

// filter is an allow/deny pair of lowercase name sets.
type filter struct {
	enabled  map[string]struct{}
	disabled map[string]struct{}
}

// allows reports whether name passes the filter. Deny wins over allow.
func (f filter) allows(name string) bool {
	name = strings.ToLower(name)
	if _, found := f.disabled[name]; found {
		return false
	}
	if f.enabled != nil {
		_, found := f.enabled[name]
		return found
	}
	return true
}

// NewConfig creates a new Config with default values
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// ParseLevel maps a level name to a slog level; unknown names yield info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// process parses string levels/lists into efficient internal formats.
func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)
	c.tags = filter{enabled: sliceToSet(c.EnabledTags), disabled: sliceToSet(c.DisabledTags)}
	c.packages = filter{enabled: sliceToSet(c.EnabledPackages), disabled: sliceToSet(c.DisabledPackages)}
	c.files = filter{enabled: sliceToSet(c.EnabledFiles), disabled: sliceToSet(c.DisabledFiles)}
	if debugFilter {
		debugf("[CONFIG PROCESS] level=%s tags=%v packages=%v files=%v", c.level, c.tags, c.packages, c.files)
	}
}

// helper function to convert slice to set
func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil // nil map means "no filter"
	}
	return set
}
