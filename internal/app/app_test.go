package app

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/stringcursor/internal/config"
	"github.com/bethropolis/stringcursor/internal/input"
	"github.com/bethropolis/stringcursor/internal/theme"
	"github.com/bethropolis/stringcursor/internal/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Field.SystemClipboard = false
	cfg.Plugins = map[string]map[string]interface{}{
		"autostash": {"enabled": false},
	}
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	ui, err := tui.NewWithScreen(sim, nil)
	require.NoError(t, err)
	sim.SetSize(30, 5)
	return New(cfg, ui, nil), sim
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestApp_Draw(t *testing.T) {
	cfg := testConfig()
	cfg.Field.InitialText = "hello"
	a, sim := newTestApp(t, cfg)
	t.Cleanup(func() {
		a.pluginManager.ShutdownPlugins()
		a.tuiManager.Close()
	})

	apply(a.editor, input.ActionEvent{Action: input.ActionSelectWordLeft})
	a.draw()

	assert.Equal(t, "> hello", screenRow(sim, 0))
	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)

	_, _, style, _ := sim.GetContent(3, 0)
	assert.Equal(t, a.activeTheme.GetStyle(theme.StyleSelection), style)
	assert.Contains(t, screenRow(sim, 4), "Sel 5")
}

func TestApp_RunReturnsText(t *testing.T) {
	a, sim := newTestApp(t, testConfig())

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := a.Run()
		done <- result{text, err}
	}()

	for _, r := range "hi there" {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, "hi ther", res.text)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Esc")
	}

	msg, _ := a.statusBar.Text()
	assert.Equal(t, "Words: 2, Runes: 8", msg)
	assert.Equal(t, 3, a.editor.HistorySize(), "hi, ' there', and the erased rune")
}

func TestApp_QuitIsIdempotent(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	t.Cleanup(func() {
		a.pluginManager.ShutdownPlugins()
		a.tuiManager.Close()
	})

	a.Quit()
	a.Quit()
	select {
	case <-a.quit:
	default:
		t.Fatal("quit channel not closed")
	}
}

func TestApp_HistoryLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Field.HistoryLimit = 2
	a, _ := newTestApp(t, cfg)
	t.Cleanup(func() {
		a.pluginManager.ShutdownPlugins()
		a.tuiManager.Close()
	})

	for _, w := range []string{"a", "b", "c", "d"} {
		a.editor.Insert(w)
	}
	assert.Equal(t, "abcd", a.editor.String())
	assert.Equal(t, 2, a.editor.HistorySize())
}
