// Package platform binds the game's window, input and texture boundaries to raylib.
package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/octosurvivors/input"
)

var raylibKeys = map[input.Key]int32{
	input.KeyEscape:    rl.KeyEscape,
	input.KeyW:         rl.KeyW,
	input.KeyA:         rl.KeyA,
	input.KeyS:         rl.KeyS,
	input.KeyD:         rl.KeyD,
	input.KeySpace:     rl.KeySpace,
	input.KeyLeftShift: rl.KeyLeftShift,
	input.KeyF1:        rl.KeyF1,
	input.KeyF3:        rl.KeyF3,
	input.KeyHome:      rl.KeyHome,
}

// Input reads key levels and mouse motion from the raylib window.
type Input struct{}

// KeyDown implements input.Source.
func (Input) KeyDown(k input.Key) bool {
	code, ok := raylibKeys[k]
	if !ok {
		return false
	}
	return rl.IsKeyDown(code)
}

// MouseDelta implements input.Source.
func (Input) MouseDelta() (dx, dy float64) {
	d := rl.GetMouseDelta()
	return float64(d.X), float64(d.Y)
}
