// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/stringcursor/internal/event"
)

// FieldAPI defines what plugins may do with the running field.
// Calls must not be made from inside editor event handlers
// (TypeEdit* and TypeCursorMoved), which run under the editor lock.
type FieldAPI interface {
	// --- Field access ---
	Text() string
	Stash() // flush the pending edit batch

	// --- Event Bus Interaction ---
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})
	RequestRedraw()

	// --- Configuration ---
	// GetPluginConfigValue reads [plugins.<plugin>] <key> from the config file.
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once at startup with the field API.
	// Used for reading config and subscribing to events.
	Initialize(api FieldAPI) error

	// Shutdown is called once when the application is closing.
	Shutdown() error
}
