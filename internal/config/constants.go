package config

import (
	"time"

	"github.com/bethropolis/stringcursor/internal/core/history"
)

// Base application details
const AppName = "stringcursor"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "stringcursor.log"

// UI Layout
const StatusBarHeight = 1
const DefaultPrompt = "> "

// Status Bar
const MessageTimeout = 4 * time.Second

// Field defaults
const DefaultHistoryLimit = history.DefaultMaxHistory
const SystemClipboard = true
