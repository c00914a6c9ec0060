package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		isQuit   bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"enter toggles run", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionToggleRun, false},
		{"space toggles cell", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionToggleCell, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"vim left", runeKey('h'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"n steps", runeKey('n'), core.ActionStep, false},
		{"r resets", runeKey('r'), core.ActionReset, false},
		{"plus is faster", runeKey('+'), core.ActionFaster, false},
		{"equals is faster", runeKey('='), core.ActionFaster, false},
		{"minus is slower", runeKey('-'), core.ActionSlower, false},
		{"g new seed", runeKey('g'), core.ActionNewSeed, false},
		{"slash edits seed", runeKey('/'), core.ActionEditSeed, false},
		{"close bracket denser", runeKey(']'), core.ActionDenser, false},
		{"open bracket sparser", runeKey('['), core.ActionSparser, false},
		{"b bounds", runeKey('b'), core.ActionBounds, false},
		{"H history", runeKey('H'), core.ActionHistory, false},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), action, tc.expected)
			}
			if isQuit != tc.isQuit {
				t.Errorf("MapKey(%q) isQuit = %v, expected %v", tc.msg.String(), isQuit, tc.isQuit)
			}
		})
	}
}

func TestKeyMapperMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('n'), &frame) {
		t.Error("n should not quit")
	}
	km.MapKeyToFrame(runeKey('z'), &frame)
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}

	got := frame.Actions()
	if len(got) != 2 || got[0] != core.ActionStep || got[1] != core.ActionQuit {
		t.Errorf("frame actions = %v, expected [Step Quit]", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}

	var n int
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 18 {
		t.Errorf("FullHelp lists %d bindings, expected 18", n)
	}
}
