// Package autostash commits the pending edit batch once typing pauses, so an
// idle field never holds an uncommitted word.
package autostash

import (
	"sync"
	"time"

	"github.com/bethropolis/stringcursor/internal/event"
	"github.com/bethropolis/stringcursor/internal/logger"
	"github.com/bethropolis/stringcursor/internal/plugin"
)

// Ensure AutoStash implements plugin.Plugin
var _ plugin.Plugin = (*AutoStash)(nil)

const (
	defaultEnabled = false
	defaultIdle    = 2 * time.Second
)

// AutoStash flushes the edit batch after a configurable idle period.
type AutoStash struct {
	api plugin.FieldAPI

	mutex      sync.Mutex
	enabled    bool
	idle       time.Duration
	lastUpdate time.Time
	dirty      bool // an action ran since the last stash
	now        func() time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new instance of the AutoStash plugin.
func New() plugin.Plugin {
	return &AutoStash{
		enabled: defaultEnabled,
		idle:    defaultIdle,
		now:     time.Now,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoStash) Name() string {
	return "autostash"
}

// Initialize reads [plugins.autostash] enabled and idle, and starts the
// watcher goroutine when enabled.
func (p *AutoStash) Initialize(api plugin.FieldAPI) error {
	p.api = api
	name := p.Name()

	p.mutex.Lock()
	if v, ok := api.GetPluginConfigValue(name, "enabled"); ok {
		if b, isBool := v.(bool); isBool {
			p.enabled = b
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", name, v, p.enabled)
		}
	}
	if v, ok := api.GetPluginConfigValue(name, "idle"); ok {
		s, isStr := v.(string)
		d, err := time.ParseDuration(s)
		switch {
		case !isStr || err != nil:
			logger.Warnf("%s: Invalid 'idle' config (%v), using default (%v)", name, v, p.idle)
		case d <= 0:
			logger.Warnf("%s: 'idle' config must be positive ('%s'), using default (%v)", name, s, p.idle)
		default:
			p.idle = d
		}
	}
	enabled, idle := p.enabled, p.idle
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Idle: %v", name, enabled, idle)
	if !enabled {
		return nil
	}

	api.SubscribeEvent(event.TypeFieldUpdated, p.handleFieldUpdated)
	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.watchLoop(idle / 2)
	return nil
}

// Shutdown stops the watcher goroutine and waits for it.
func (p *AutoStash) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
	}
	return nil
}

func (p *AutoStash) handleFieldUpdated(event.Event) bool {
	p.mutex.Lock()
	p.lastUpdate = p.now()
	p.dirty = true
	p.mutex.Unlock()
	return false
}

func (p *AutoStash) watchLoop(tick time.Duration) {
	defer p.wg.Done()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.stashIfIdle()
		case <-p.stopChan:
			return
		}
	}
}

// stashIfIdle flushes the batch when the last action is older than idle.
// It reports whether it stashed.
func (p *AutoStash) stashIfIdle() bool {
	p.mutex.Lock()
	due := p.dirty && p.now().Sub(p.lastUpdate) >= p.idle
	if due {
		p.dirty = false
	}
	p.mutex.Unlock()

	if !due {
		return false
	}
	logger.DebugTagf("batch", "%s: idle, stashing pending edits", p.Name())
	p.api.Stash()
	p.api.RequestRedraw()
	return true
}
