package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFlap) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFlap)
	if !f.Has(ActionFlap) {
		t.Error("expected Flap after Set")
	}
	if f.Has(ActionQuit) {
		t.Error("Quit was never set")
	}

	f.Set(ActionFlap)
	if len(f.Actions) != 1 {
		t.Errorf("repeated Set should record one action, got %v", f.Actions)
	}

	f.Clear()
	if f.Has(ActionFlap) || len(f.Actions) != 0 {
		t.Error("Clear should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFlap, "Flap"},
		{ActionQuit, "Quit"},
		{ActionHistory, "History"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
