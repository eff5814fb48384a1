// internal/plugin/manager.go
package plugin

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/stringcursor/internal/logger"
)

// ErrDuplicate is returned when a plugin name is registered twice.
var ErrDuplicate = errors.New("plugin already registered")

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu          sync.RWMutex
	plugins     map[string]Plugin
	initialized []Plugin // successfully initialized, in init order
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(p Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := p.Name()
	if name == "" {
		return errors.New("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: '%s': %w", name, ErrDuplicate)
	}

	m.plugins[name] = p
	logger.DebugTagf("plugin", "Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin in name
// order. A failing plugin is logged and skipped; the joined errors are returned.
func (m *Manager) InitializePlugins(api FieldAPI) error {
	var errs []error
	for _, p := range m.sorted() {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", p.Name(), err)
			errs = append(errs, fmt.Errorf("initialize %s: %w", p.Name(), err))
			continue
		}
		m.mu.Lock()
		m.initialized = append(m.initialized, p)
		m.mu.Unlock()
		logger.DebugTagf("plugin", "Plugin Manager: Initialized plugin '%s'", p.Name())
	}
	return errors.Join(errs...)
}

// ShutdownPlugins calls Shutdown on initialized plugins in reverse order.
func (m *Manager) ShutdownPlugins() {
	m.mu.Lock()
	plugins := m.initialized
	m.initialized = nil
	m.mu.Unlock()

	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

func (m *Manager) sorted() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.plugins))
	for name := range m.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Plugin, 0, len(names))
	for _, name := range names {
		out = append(out, m.plugins[name])
	}
	return out
}
