package app

import (
	"github.com/bethropolis/stringcursor/internal/event"
	"github.com/bethropolis/stringcursor/internal/plugin"
)

// fieldAPI is the plugin.FieldAPI view of an App.
type fieldAPI struct {
	app *App
}

var _ plugin.FieldAPI = (*fieldAPI)(nil)

func newFieldAPI(a *App) *fieldAPI {
	return &fieldAPI{app: a}
}

func (api *fieldAPI) Text() string {
	return api.app.editor.String()
}

func (api *fieldAPI) Stash() {
	api.app.editor.Stash()
}

func (api *fieldAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

func (api *fieldAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}

func (api *fieldAPI) RequestRedraw() {
	api.app.requestRedraw()
}

func (api *fieldAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}
