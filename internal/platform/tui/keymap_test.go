package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hexes/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q moves up-left", runeKey('q'), core.ActionUpLeft},
		{"c moves down-right", runeKey('c'), core.ActionDownRight},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"enter picks", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect},
		{"minus undoes", runeKey('-'), core.ActionUndo},
		{"tab redoes", tea.KeyMsg{Type: tea.KeyTab}, core.ActionRedo},
		{"v previews", runeKey('v'), core.ActionPreview},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"unbound key", runeKey('g'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if quit {
				t.Errorf("MapKey(%q) reported quit", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	action, quit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit || action != core.ActionQuit {
		t.Errorf("ctrl+c = (%v, %v), want (ActionQuit, true)", action, quit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(runeKey('r'), &frame)

	if !frame.Has(core.ActionClear) || !frame.Has(core.ActionRestart) {
		t.Error("frame should hold both clear and restart")
	}
	if frame.Has(core.ActionSelect) {
		t.Error("frame should not hold select")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
