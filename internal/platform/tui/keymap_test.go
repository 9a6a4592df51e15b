package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w", runeKey("w"), core.ActionFlap},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFlap},
		{"q", runeKey("q"), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"h", runeKey("h"), core.ActionHistory},
		{"x", runeKey("x"), core.ActionNone},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestMapKeyToFrameOnlyRecordsFlap(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey("q"), &frame)
	km.MapKeyToFrame(runeKey("h"), &frame)
	if len(frame.Actions) != 0 {
		t.Errorf("quit and history should not reach the game, got %v", frame.Actions)
	}

	// Several presses between ticks collapse into one flap.
	km.MapKeyToFrame(runeKey("w"), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	if !frame.Has(core.ActionFlap) || len(frame.Actions) != 1 {
		t.Errorf("expected a single flap, got %v", frame.Actions)
	}
}
