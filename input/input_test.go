package input

import "testing"

func TestTrackerEdgeTriggered(t *testing.T) {
	frames := []Frame{}
	frames = append(frames, Idle(1)...)
	frames = append(frames, Hold(5, KeyEscape)...) // held for five frames
	frames = append(frames, Idle(2)...)
	frames = append(frames, Hold(1, KeyEscape)...)
	s := NewScript(frames...)

	var tr Tracker
	presses := 0
	for range frames {
		s.Advance()
		tr.Update(s)
		if tr.JustPressed(KeyEscape) {
			presses++
		}
	}
	if presses != 2 {
		t.Errorf("expected 2 press edges, got %d", presses)
	}
}

func TestTrackerDownAndAxis(t *testing.T) {
	s := NewScript(Frame{Down: []Key{KeyW, KeyD}}, Frame{Down: []Key{KeyW, KeyS}})
	var tr Tracker

	s.Advance()
	tr.Update(s)
	if got := tr.Axis(KeyW, KeyS); got != 1 {
		t.Errorf("expected forward axis 1, got %f", got)
	}
	if got := tr.Axis(KeyD, KeyA); got != 1 {
		t.Errorf("expected right axis 1, got %f", got)
	}

	s.Advance()
	tr.Update(s)
	if got := tr.Axis(KeyW, KeyS); got != 0 {
		t.Errorf("opposing keys should cancel, got %f", got)
	}
	if tr.JustPressed(KeyW) {
		t.Error("W was held across frames; no new edge expected")
	}
	if !tr.JustPressed(KeyS) {
		t.Error("S went down this frame")
	}
}

func TestScriptMouseAndExhaustion(t *testing.T) {
	s := NewScript(Frame{DX: 3, DY: -2})
	var tr Tracker

	s.Advance()
	tr.Update(s)
	if dx, dy := tr.MouseDelta(); dx != 3 || dy != -2 {
		t.Errorf("expected (3, -2), got (%f, %f)", dx, dy)
	}

	s.Advance()
	tr.Update(s)
	if dx, dy := tr.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("exhausted script should report no motion, got (%f, %f)", dx, dy)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"escape", KeyEscape, false},
		{" Escape ", KeyEscape, false},
		{"F1", KeyF1, false},
		{"none", KeyNone, true},
		{"tab", KeyNone, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCursorToggle(t *testing.T) {
	c := NewCursor()
	c.Toggle()
	if c.Grab != GrabLocked || c.Visible {
		t.Errorf("expected locked and hidden, got %s visible=%v", c.Grab, c.Visible)
	}
	c.Toggle()
	if c.Grab != GrabNone || !c.Visible {
		t.Errorf("expected free and visible, got %s visible=%v", c.Grab, c.Visible)
	}

	c = Cursor{Grab: GrabConfined, Visible: false}
	c.Toggle()
	if c.Grab != GrabNone || !c.Visible {
		t.Errorf("confined cursor should release, got %s visible=%v", c.Grab, c.Visible)
	}
}
