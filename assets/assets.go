// Package assets declares the game's asset collection and drives its loading.
package assets

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/pthm-cable/octosurvivors/config"
)

// ErrPending is returned by a Backend while a texture is still loading.
var ErrPending = errors.New("assets: still loading")

// TextureID identifies a texture held by a Backend. Zero is "no texture".
type TextureID uint32

// Backend loads textures from disk (or pretends to).
type Backend interface {
	LoadTexture(path string) (TextureID, error)
	UnloadTexture(id TextureID)
	Live() int // Textures currently held
}

// Ticker is implemented by backends that make progress with frame time.
type Ticker interface {
	Tick(dt time.Duration)
}

// AtlasLayout describes a grid of equally sized frames.
type AtlasLayout struct {
	TileW, TileH  int
	Columns, Rows int
}

// Len returns the number of frames.
func (l AtlasLayout) Len() int {
	return l.Columns * l.Rows
}

// Frame returns the source rectangle of frame i in pixels.
// Indices wrap modulo Len.
func (l AtlasLayout) Frame(i int) (x, y, w, h float32) {
	n := l.Len()
	if n == 0 {
		return 0, 0, 0, 0
	}
	i = ((i % n) + n) % n
	col := i % l.Columns
	row := i / l.Columns
	return float32(col * l.TileW), float32(row * l.TileH), float32(l.TileW), float32(l.TileH)
}

// Atlas is a texture atlas entry in a collection.
type Atlas struct {
	Path    string
	Layout  AtlasLayout
	Texture TextureID
	loaded  bool
}

// Loaded reports whether the texture has been resolved.
func (a *Atlas) Loaded() bool {
	return a.loaded
}

// ImageAssets is the collection that must resolve before the game is Ready.
type ImageAssets struct {
	Run Atlas
}

// NewImageAssets declares the collection from config.
func NewImageAssets(cfg config.AssetsConfig) *ImageAssets {
	p := cfg.Player
	return &ImageAssets{
		Run: Atlas{
			Path: filepath.Join(cfg.Root, p.Path),
			Layout: AtlasLayout{
				TileW:   p.TileW,
				TileH:   p.TileH,
				Columns: p.Columns,
				Rows:    p.Rows,
			},
		},
	}
}

// entries lists every atlas in the collection.
func (c *ImageAssets) entries() []*Atlas {
	return []*Atlas{&c.Run}
}

// Loader resolves a collection through a Backend, a little each frame.
type Loader struct {
	backend    Backend
	collection *ImageAssets
	err        error
	ready      bool
}

// NewLoader creates a loader for the collection.
func NewLoader(backend Backend, collection *ImageAssets) *Loader {
	return &Loader{backend: backend, collection: collection}
}

// Poll advances loading by dt. It returns true once every entry has
// resolved. A failed entry stops loading for good; the error is returned
// on the call that observed it and logged once.
func (l *Loader) Poll(dt time.Duration) (bool, error) {
	if l.ready {
		return true, nil
	}
	if l.err != nil {
		return false, nil
	}
	if t, ok := l.backend.(Ticker); ok {
		t.Tick(dt)
	}

	pending := 0
	for _, a := range l.collection.entries() {
		if a.Loaded() {
			continue
		}
		id, err := l.backend.LoadTexture(a.Path)
		if errors.Is(err, ErrPending) {
			pending++
			continue
		}
		if err != nil {
			l.err = fmt.Errorf("loading %s: %w", a.Path, err)
			slog.Error("asset_load_failed", "path", a.Path, "error", err)
			return false, l.err
		}
		a.Texture = id
		a.loaded = true
		slog.Info("asset_loaded", "path", a.Path, "texture", id)
	}

	l.ready = pending == 0
	return l.ready, nil
}

// Ready reports whether the collection has fully resolved.
func (l *Loader) Ready() bool {
	return l.ready
}

// Live returns the number of textures the backend holds.
func (l *Loader) Live() int {
	return l.backend.Live()
}

// Err returns the load failure, if any.
func (l *Loader) Err() error {
	return l.err
}

// Assets returns the collection. Entries are only valid once Ready.
func (l *Loader) Assets() *ImageAssets {
	return l.collection
}

// Unload releases loaded textures.
func (l *Loader) Unload() {
	for _, a := range l.collection.entries() {
		if a.Loaded() {
			l.backend.UnloadTexture(a.Texture)
			a.loaded = false
			a.Texture = 0
		}
	}
	l.ready = false
}
