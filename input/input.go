// Package input turns raw key levels into press edges for the game systems.
package input

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key the game listens to.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyF1
	KeyF3
	KeyHome

	numKeys
)

var keyNames = [numKeys]string{
	KeyNone:      "none",
	KeyEscape:    "escape",
	KeyW:         "w",
	KeyA:         "a",
	KeyS:         "s",
	KeyD:         "d",
	KeySpace:     "space",
	KeyLeftShift: "left_shift",
	KeyF1:        "f1",
	KeyF3:        "f3",
	KeyHome:      "home",
}

func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseKey maps a config name such as "escape" to a Key.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if k != int(KeyNone) && n == name {
			return Key(k), nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// Source reports the current level of keys and mouse motion for one frame.
type Source interface {
	KeyDown(k Key) bool
	MouseDelta() (dx, dy float64)
}

// Tracker derives press edges from successive key levels.
// A held key is pressed exactly once, on the frame it goes down.
type Tracker struct {
	down    [numKeys]bool
	pressed [numKeys]bool
	dx, dy  float64
}

// Update samples src for a new frame.
func (t *Tracker) Update(src Source) {
	for k := Key(1); k < numKeys; k++ {
		level := src.KeyDown(k)
		t.pressed[k] = level && !t.down[k]
		t.down[k] = level
	}
	t.dx, t.dy = src.MouseDelta()
}

// JustPressed reports a rising edge on k during the last Update.
func (t *Tracker) JustPressed(k Key) bool {
	return k < numKeys && t.pressed[k]
}

// Down reports whether k is held.
func (t *Tracker) Down(k Key) bool {
	return k < numKeys && t.down[k]
}

// Axis returns +1 if pos is held, -1 if neg is held, 0 for both or neither.
func (t *Tracker) Axis(pos, neg Key) float64 {
	var v float64
	if t.Down(pos) {
		v++
	}
	if t.Down(neg) {
		v--
	}
	return v
}

// MouseDelta returns the mouse motion sampled by the last Update.
func (t *Tracker) MouseDelta() (dx, dy float64) {
	return t.dx, t.dy
}
