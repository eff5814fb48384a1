// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Binding identifies a key press. Rune is only set for tcell.KeyRune.
type Binding struct {
	Key  tcell.Key
	Mod  tcell.ModMask
	Rune rune
}

// Keymap maps key presses to field actions.
type Keymap map[Binding]Action

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap Keymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{keymap: make(Keymap)}
	p.loadDefaultBindings()
	return p
}

// Bind maps a special key with modifiers to action.
func (p *InputProcessor) Bind(key tcell.Key, mod tcell.ModMask, action Action) {
	p.keymap[Binding{Key: key, Mod: mod}] = action
}

// BindRune maps a rune with modifiers (usually Alt) to action.
func (p *InputProcessor) BindRune(r rune, mod tcell.ModMask, action Action) {
	p.keymap[Binding{Key: tcell.KeyRune, Mod: mod, Rune: r}] = action
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	none, shift, ctrl, alt := tcell.ModNone, tcell.ModShift, tcell.ModCtrl, tcell.ModAlt

	// --- Movement and selection ---
	p.Bind(tcell.KeyLeft, none, ActionMoveLeft)
	p.Bind(tcell.KeyRight, none, ActionMoveRight)
	p.Bind(tcell.KeyLeft, ctrl, ActionMoveWordLeft)
	p.Bind(tcell.KeyRight, ctrl, ActionMoveWordRight)
	p.Bind(tcell.KeyLeft, alt, ActionMoveWordLeft) // macOS terminals send Alt for word jumps
	p.Bind(tcell.KeyRight, alt, ActionMoveWordRight)
	p.Bind(tcell.KeyHome, none, ActionMoveHome)
	p.Bind(tcell.KeyEnd, none, ActionMoveEnd)
	p.Bind(tcell.KeyLeft, shift, ActionSelectLeft)
	p.Bind(tcell.KeyRight, shift, ActionSelectRight)
	p.Bind(tcell.KeyLeft, ctrl|shift, ActionSelectWordLeft)
	p.Bind(tcell.KeyRight, ctrl|shift, ActionSelectWordRight)
	p.Bind(tcell.KeyHome, shift, ActionSelectHome)
	p.Bind(tcell.KeyEnd, shift, ActionSelectEnd)
	p.Bind(tcell.KeyCtrlA, none, ActionSelectAll)

	// --- Deletion ---
	p.Bind(tcell.KeyBackspace, none, ActionEraseChar)
	p.Bind(tcell.KeyBackspace2, none, ActionEraseChar) // Often used for Backspace
	p.Bind(tcell.KeyDelete, none, ActionDeleteChar)
	p.Bind(tcell.KeyCtrlW, none, ActionEraseWord)
	p.Bind(tcell.KeyBackspace, alt, ActionEraseWord)
	p.Bind(tcell.KeyBackspace2, alt, ActionEraseWord)
	p.Bind(tcell.KeyDelete, ctrl, ActionDeleteWord)
	p.BindRune('d', alt, ActionDeleteWord)

	// --- History and clipboard ---
	p.Bind(tcell.KeyCtrlZ, none, ActionCancel)
	p.Bind(tcell.KeyCtrlY, none, ActionRedo)
	p.Bind(tcell.KeyCtrlC, none, ActionCopy)
	p.Bind(tcell.KeyCtrlX, none, ActionCut)
	p.Bind(tcell.KeyCtrlV, none, ActionPaste)

	// --- Meta ---
	p.Bind(tcell.KeyEnter, none, ActionSubmit)
	p.Bind(tcell.KeyEscape, none, ActionQuit)
	p.Bind(tcell.KeyCtrlQ, none, ActionQuit)
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// Control keys already name the Ctrl combination; terminals differ on
	// whether they also report the modifier.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}
	if key == tcell.KeyBackspace2 || key == tcell.KeyEscape {
		mod &^= tcell.ModCtrl
	}

	b := Binding{Key: key, Mod: mod}
	if key == tcell.KeyRune {
		b.Rune = runeVal
	}
	if action, ok := p.keymap[b]; ok {
		return ActionEvent{Action: action}
	}

	// Plain runes are typed. Shift is already folded into the rune.
	if key == tcell.KeyRune && mod&^tcell.ModShift == tcell.ModNone {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}
