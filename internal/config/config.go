// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/stringcursor/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Field  FieldConfig   `toml:"field"`  // [field] table

	// Plugins holds the [plugins.<name>] tables, read by each plugin.
	Plugins map[string]map[string]interface{} `toml:"plugins"`
}

// FieldConfig holds the text field settings.
type FieldConfig struct {
	HistoryLimit    int    `toml:"history_limit"` // 0 keeps every edit
	SystemClipboard bool   `toml:"system_clipboard"`
	InitialText     string `toml:"initial_text"`
	Prompt          string `toml:"prompt"`
	ThemeFile       string `toml:"theme_file"` // empty uses the built-in theme
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
// Logging defaults to DefaultLogFileName rather than stderr.
func NewDefaultConfig() *Config {
	logCfg := logger.NewConfig()
	logCfg.LogFilePath = DefaultLogFileName
	return &Config{
		Logger: logCfg,
		Field: FieldConfig{
			HistoryLimit:    DefaultHistoryLimit,
			SystemClipboard: SystemClipboard,
			Prompt:          DefaultPrompt,
		},
	}
}

// PluginValue returns [plugins.<pluginName>] <key>.
func (c *Config) PluginValue(pluginName, key string) (interface{}, bool) {
	table, ok := c.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}

// DefaultPath returns $XDG_CONFIG_HOME/stringcursor/config.toml or its
// platform equivalent, and "" when no config directory is known.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. Keys absent from the file keep
// their current value. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		logger.Debugf("Config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	logger.Infof("Loaded configuration from: %s", filePath)
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Field.HistoryLimit < 0 {
		c.Field.HistoryLimit = defaults.Field.HistoryLimit
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// load builds a configuration from defaults, the file at configFilePath
// (DefaultPath when empty) and flag overrides, in that order.
func load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var err error
	if effectivePath != "" {
		err = loadFromFile(effectivePath, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// It should be called only once, typically from main. A file error is
// returned together with a usable configuration.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
