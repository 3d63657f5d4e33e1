package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hexes/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	UpLeft    key.Binding
	UpRight   key.Binding
	Left      key.Binding
	Right     key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Clear     key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Preview   key.Binding
	Next      key.Binding
	Restart   key.Binding
	Pause     key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Clear, k.Undo, k.Redo, k.Preview, k.Restart, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.UpLeft, k.UpRight, k.Left, k.Right, k.DownLeft, k.DownRight, k.Up, k.Down},
		{k.Select, k.Clear, k.Undo, k.Redo},
		{k.Preview, k.Next, k.Restart, k.Pause, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		UpLeft: key.NewBinding(
			key.WithKeys("q", "y"),
			key.WithHelp("q/y", "up-left"),
		),
		UpRight: key.NewBinding(
			key.WithKeys("e", "u"),
			key.WithHelp("e/u", "up-right"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		DownLeft: key.NewBinding(
			key.WithKeys("z", "b"),
			key.WithHelp("z/b", "down-left"),
		),
		DownRight: key.NewBinding(
			key.WithKeys("c", "n"),
			key.WithHelp("c/n", "down-right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "pick"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Undo: key.NewBinding(
			key.WithKeys("backspace", "-"),
			key.WithHelp("-", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("tab", "="),
			key.WithHelp("=", "redo"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "preview"),
		),
		Next: key.NewBinding(
			key.WithKeys("]", "."),
			key.WithHelp("]", "next level"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    KeyMap
	actions []boundAction
}

type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultKeyMap())
}

// NewKeyMapperWith creates a key mapper over custom bindings.
func NewKeyMapperWith(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	k := &km.keys
	km.actions = []boundAction{
		{&k.UpLeft, core.ActionUpLeft},
		{&k.UpRight, core.ActionUpRight},
		{&k.Left, core.ActionLeft},
		{&k.Right, core.ActionRight},
		{&k.DownLeft, core.ActionDownLeft},
		{&k.DownRight, core.ActionDownRight},
		{&k.Up, core.ActionUp},
		{&k.Down, core.ActionDown},
		{&k.Select, core.ActionSelect},
		{&k.Clear, core.ActionClear},
		{&k.Undo, core.ActionUndo},
		{&k.Redo, core.ActionRedo},
		{&k.Preview, core.ActionPreview},
		{&k.Next, core.ActionNext},
		{&k.Restart, core.ActionRestart},
		{&k.Pause, core.ActionPause},
		{&k.Back, core.ActionBack},
	}
	return km
}

// Keys returns the bindings for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.actions {
		if key.Matches(msg, *b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
