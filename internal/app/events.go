package app

import (
	"github.com/bethropolis/stringcursor/internal/event"
	"github.com/bethropolis/stringcursor/internal/logger"
)

// subscribeEvents wires App reactions. Editor events fire under the editor
// lock, so these handlers only log and request a redraw.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeEditCommitted, a.handleHistoryEvent)
	a.eventManager.Subscribe(event.TypeEditCanceled, a.handleHistoryEvent)
	a.eventManager.Subscribe(event.TypeEditRedone, a.handleHistoryEvent)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMoved)
	a.eventManager.Subscribe(event.TypeAppQuit, a.handleAppQuit)
}

func (a *App) handleHistoryEvent(e event.Event) bool {
	if data, ok := e.Data.(event.EditData); ok {
		logger.DebugTagf("history", "App: %s %s", e.Type, data.Edit)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		logger.DebugTagf("cursor", "App: cursor at %d", data.Position)
	}
	return false
}

func (a *App) handleAppQuit(e event.Event) bool {
	if data, ok := e.Data.(event.AppQuitData); ok {
		logger.Infof("App: quitting with %d bytes of text", len(data.Text))
	}
	return false
}
