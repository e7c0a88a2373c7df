package config

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Derived.AtlasLen != 3 {
		t.Errorf("expected atlas length 3, got %d", cfg.Derived.AtlasLen)
	}
	if cfg.Player.StartIndex != 1 {
		t.Errorf("expected start index 1, got %d", cfg.Player.StartIndex)
	}
	if cfg.Tower.Shooting {
		t.Error("tower shooting should default to disabled")
	}
	if cfg.Tower.ShootInterval != 1.0 {
		t.Errorf("expected shoot interval 1.0, got %f", cfg.Tower.ShootInterval)
	}
	if got := cfg.Camera.Position.R3(); got.X != 10 || got.Y != 10 || got.Z != 10 {
		t.Errorf("expected camera at (10,10,10), got %+v", got)
	}
	if cfg.Derived.ClearRGBA != (RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}) {
		t.Errorf("unexpected clear color %+v", cfg.Derived.ClearRGBA)
	}
}

func TestDefaultAtlasShipped(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	// Tests run in the package directory; the game runs from the repo root
	path := filepath.Join("..", cfg.Assets.Root, cfg.Assets.Player.Path)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("default atlas missing: %v", err)
	}
	if info.IsDir() || info.Size() == 0 {
		t.Fatalf("default atlas %s should be a non-empty file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding atlas: %v", err)
	}
	a := cfg.Assets.Player
	if img.Width != a.TileW*a.Columns || img.Height != a.TileH*a.Rows {
		t.Errorf("atlas is %dx%d, config expects %dx%d", img.Width, img.Height, a.TileW*a.Columns, a.TileH*a.Rows)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("tower:\n  shooting: true\nplayer:\n  frame_period: 0.2\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load overlay: %v", err)
	}
	if !cfg.Tower.Shooting {
		t.Error("overlay should enable tower shooting")
	}
	if cfg.Player.FramePeriod != 0.2 {
		t.Errorf("expected frame period 0.2, got %f", cfg.Player.FramePeriod)
	}
	// Untouched fields keep their defaults
	if cfg.Tower.Bullet.Lifetime != 0.4 {
		t.Errorf("expected bullet lifetime 0.4, got %f", cfg.Tower.Bullet.Lifetime)
	}
}

func TestLoadRejectsBadAtlas(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("player:\n  start_index: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for start index outside the atlas")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#ff00ff", RGBA{255, 0, 255, 255}, false},
		{"212121", RGBA{0x21, 0x21, 0x21, 255}, false},
		{"#11223344", RGBA{0x11, 0x22, 0x33, 0x44}, false},
		{"#fff", RGBA{}, true},
		{"#gg0000", RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Tower.Position != cfg.Tower.Position {
		t.Errorf("tower position changed: %v -> %v", cfg.Tower.Position, back.Tower.Position)
	}
}
