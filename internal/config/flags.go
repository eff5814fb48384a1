// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/stringcursor/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	HistoryLimit    *int
	Prompt          *string
	InitialText     *string
	ThemeFile       *string
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
	SystemClipboard *bool
}

// NewFlags defines the command-line flags on fs, or on the process-wide
// flag set when fs is nil.
func NewFlags(fs *flag.FlagSet) *Flags {
	if fs == nil {
		fs = flag.CommandLine
	}
	f := &Flags{fs: fs}
	f.DefineFlags()
	return f
}

// DefineFlags sets up the command-line flags and associates them with the Flags struct fields.
func (f *Flags) DefineFlags() {
	fs := f.fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.HistoryLimit = fs.Int("history-limit", -1, "Maximum number of undo records, 0 for unlimited - Overrides config file") // -1 means unset
	f.Prompt = fs.String("prompt", "", "Prompt shown before the field - Overrides config file")
	f.InitialText = fs.String("text", "", "Initial field text - Overrides config file")
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Use the system clipboard instead of the internal register")
}

// ParseFlags parses args (os.Args[1:] in main) and returns the remaining
// non-flag arguments.
func (f *Flags) ParseFlags(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	// Visit only processes flags that were actually set
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath // "-" is valid
		case "history-limit":
			if *f.HistoryLimit >= 0 {
				cfg.Field.HistoryLimit = *f.HistoryLimit
			}
		case "prompt":
			cfg.Field.Prompt = *f.Prompt
		case "text":
			cfg.Field.InitialText = *f.InitialText
		case "theme":
			cfg.Field.ThemeFile = *f.ThemeFile
		case "system-clipboard":
			cfg.Field.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			if tags := splitCommaList(*f.EnableTags); tags != nil {
				cfg.Logger.EnabledTags = tags
			}
		case "log-disable-tags":
			if tags := splitCommaList(*f.DisableTags); tags != nil {
				cfg.Logger.DisabledTags = tags
			}
		case "log-packages":
			if pkgs := splitCommaList(*f.EnablePkgs); pkgs != nil {
				cfg.Logger.EnabledPackages = pkgs
			}
		case "log-disable-packages":
			if pkgs := splitCommaList(*f.DisablePkgs); pkgs != nil {
				cfg.Logger.DisabledPackages = pkgs
			}
		case "log-files":
			if files := splitCommaList(*f.EnableFiles); files != nil {
				cfg.Logger.EnabledFiles = files
			}
		case "log-disable-files":
			if files := splitCommaList(*f.DisableFiles); files != nil {
				cfg.Logger.DisabledFiles = files
			}
		}
	})
}

// splitCommaList splits a comma-separated list, dropping blanks.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
