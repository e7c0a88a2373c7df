package platform

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/octosurvivors/assets"
)

// Textures loads textures into GPU memory through raylib.
// It requires an open window.
type Textures struct {
	next     assets.TextureID
	textures map[assets.TextureID]rl.Texture2D
}

// NewTextures creates an empty texture store.
func NewTextures() *Textures {
	return &Textures{textures: make(map[assets.TextureID]rl.Texture2D)}
}

// LoadTexture implements assets.Backend.
func (t *Textures) LoadTexture(path string) (assets.TextureID, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return 0, fmt.Errorf("raylib could not decode %s", path)
	}
	// Pixel art: nearest-neighbour sampling
	rl.SetTextureFilter(tex, rl.FilterPoint)

	t.next++
	t.textures[t.next] = tex
	return t.next, nil
}

// UnloadTexture implements assets.Backend.
func (t *Textures) UnloadTexture(id assets.TextureID) {
	if tex, ok := t.textures[id]; ok {
		rl.UnloadTexture(tex)
		delete(t.textures, id)
	}
}

// Live implements assets.Backend.
func (t *Textures) Live() int {
	return len(t.textures)
}

// Get returns the raylib texture for id.
func (t *Textures) Get(id assets.TextureID) (rl.Texture2D, bool) {
	tex, ok := t.textures[id]
	return tex, ok
}
