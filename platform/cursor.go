package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/octosurvivors/input"
)

// Cursor applies cursor grab and visibility to the raylib window.
type Cursor struct{}

// ApplyCursor implements input.CursorBackend.
func (Cursor) ApplyCursor(c input.Cursor) {
	if c.Grab == input.GrabNone {
		rl.EnableCursor()
	} else {
		// DisableCursor locks the cursor to the window and hides it
		rl.DisableCursor()
	}
	if c.Visible {
		rl.ShowCursor()
	} else {
		rl.HideCursor()
	}
}
