// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/stringcursor/cursor"
	"github.com/bethropolis/stringcursor/internal/config"
	"github.com/bethropolis/stringcursor/internal/core/clipboard"
	"github.com/bethropolis/stringcursor/internal/event"
	"github.com/bethropolis/stringcursor/internal/input"
	"github.com/bethropolis/stringcursor/internal/logger"
	"github.com/bethropolis/stringcursor/internal/plugin"
	"github.com/bethropolis/stringcursor/internal/statusbar"
	"github.com/bethropolis/stringcursor/internal/theme"
	"github.com/bethropolis/stringcursor/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App runs a single text field on the terminal.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	editor         *cursor.Synchronized
	field          *tui.Field
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	pluginManager  *plugin.Manager
	inputProcessor *input.InputProcessor
	activeTheme    *theme.Theme

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// NewApp creates the application on the controlling terminal.
func NewApp(cfg *config.Config) (*App, error) {
	activeTheme := theme.Load(cfg.Field.ThemeFile)
	tuiManager, err := tui.New(activeTheme)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return New(cfg, tuiManager, activeTheme), nil
}

// New wires the field, status bar, events and plugins around tuiManager.
func New(cfg *config.Config, tuiManager *tui.TUI, activeTheme *theme.Theme) *App {
	if activeTheme == nil {
		activeTheme = theme.Default()
	}
	eventManager := event.NewManager()

	ed := cursor.New(cfg.Field.InitialText,
		cursor.WithHistoryLimit(cfg.Field.HistoryLimit),
		cursor.WithEventManager(eventManager),
		cursor.WithClipboard(clipboard.New(cfg.Field.SystemClipboard)),
	)

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		editor:         cursor.NewSynchronized(ed),
		field:          tui.NewField(activeTheme),
		statusBar:      statusbar.New(statusbar.ConfigFromTheme(activeTheme, config.MessageTimeout)),
		eventManager:   eventManager,
		pluginManager:  plugin.NewManager(),
		inputProcessor: input.NewInputProcessor(),
		activeTheme:    activeTheme,
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
	}

	a.subscribeEvents()

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(newFieldAPI(a)); err != nil {
		logger.Warnf("App: %v", err)
	}
	return a
}

// Run starts the event and drawing loops and blocks until the user quits.
// It returns the final field text.
func (a *App) Run() (string, error) {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	a.statusBar.SetTemporaryMessage("Ctrl+Z Cancel | Ctrl+Y Redo | Enter Stash | Esc Quit")
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})

	go a.eventLoop()
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.editor.Stash()
			text := a.editor.String()
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{Text: text})
			logger.Infof("Exiting application.")
			return text, nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop handles TUI events until the screen is closed.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			a.requestRedraw()
		case *tcell.EventKey:
			a.handleKey(eventData)
		}
	}
}

// handleKey applies one key press to the field.
func (a *App) handleKey(ev *tcell.EventKey) {
	action := a.inputProcessor.ProcessEvent(ev)
	if action.Action == input.ActionUnknown {
		logger.DebugTagf("input", "App: unbound key %s", ev.Name())
		return
	}

	out := apply(a.editor, action)
	if out.message != "" {
		a.statusBar.SetTemporaryMessage("%s", out.message)
	}
	if out.quit {
		a.Quit()
		return
	}

	// Dispatched outside the editor lock so handlers may read the field.
	data := event.FieldData{Action: action.Action.String()}
	a.editor.Do(func(ed cursor.Editor) {
		data.Text = ed.String()
		data.Cursor = ed.Cursor()
	})
	a.eventManager.Dispatch(event.TypeFieldUpdated, data)
	if out.submit {
		a.eventManager.Dispatch(event.TypeFieldSubmitted, data)
	}
	a.requestRedraw()
}

// Quit stops Run. Safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
