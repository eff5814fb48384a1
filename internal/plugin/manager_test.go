package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlugin struct {
	name    string
	initErr error
	calls   *[]string
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(FieldAPI) error {
	*p.calls = append(*p.calls, "init "+p.name)
	return p.initErr
}

func (p *fakePlugin) Shutdown() error {
	*p.calls = append(*p.calls, "shutdown "+p.name)
	return nil
}

func TestManager_Register(t *testing.T) {
	m := NewManager()
	var calls []string

	require.NoError(t, m.Register(&fakePlugin{name: "a", calls: &calls}))
	err := m.Register(&fakePlugin{name: "a", calls: &calls})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Error(t, m.Register(&fakePlugin{calls: &calls}), "empty name")

	p, ok := m.GetPlugin("a")
	assert.True(t, ok)
	assert.Equal(t, "a", p.Name())
	_, ok = m.GetPlugin("b")
	assert.False(t, ok)
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager()
	var calls []string
	boom := errors.New("boom")

	require.NoError(t, m.Register(&fakePlugin{name: "b", calls: &calls}))
	require.NoError(t, m.Register(&fakePlugin{name: "a", calls: &calls}))
	require.NoError(t, m.Register(&fakePlugin{name: "c", calls: &calls, initErr: boom}))

	err := m.InitializePlugins(nil)
	assert.ErrorIs(t, err, boom)

	m.ShutdownPlugins()
	m.ShutdownPlugins()

	assert.Equal(t, []string{
		"init a", "init b", "init c",
		"shutdown b", "shutdown a",
	}, calls, "failed plugins are not shut down, shutdown runs once")
}
