package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/stringcursor/internal/logger"
	"github.com/bethropolis/stringcursor/internal/plugin"
	"github.com/bethropolis/stringcursor/plugins/autostash"
	"github.com/bethropolis/stringcursor/plugins/wordcount"
)

// registerPlugins registers all built-in plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return errors.New("plugin manager is nil")
	}

	// Adding a new plugin means adding its constructor here.
	pluginConstructors := []func() plugin.Plugin{
		wordcount.New,
		autostash.New,
	}

	var errs []error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.DebugTagf("plugin", "Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			errs = append(errs, fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}
