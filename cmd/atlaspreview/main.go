// Atlas preview tool - steps through a sprite atlas with the game's
// animation timer and lets the frame period be tuned with a slider.
//
// Usage: go run ./cmd/atlaspreview [-config config.yaml]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/octosurvivors/assets"
	"github.com/pthm-cable/octosurvivors/components"
	"github.com/pthm-cable/octosurvivors/config"
	"github.com/pthm-cable/octosurvivors/platform"
	"github.com/pthm-cable/octosurvivors/timer"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewSize  = 400
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Atlas Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	textures := platform.NewTextures()
	loader := assets.NewLoader(textures, assets.NewImageAssets(cfg.Assets))
	if _, err := loader.Poll(0); err != nil {
		slog.Error("failed to load atlas", "error", err)
		os.Exit(1)
	}
	defer loader.Unload()

	atlas := loader.Assets().Run
	tex, _ := textures.Get(atlas.Texture)
	sprite := components.AtlasSprite{
		Texture: atlas.Texture,
		Index:   cfg.Player.StartIndex,
		Len:     atlas.Layout.Len(),
		Columns: atlas.Layout.Columns,
		TileW:   atlas.Layout.TileW,
		TileH:   atlas.Layout.TileH,
	}

	period := float32(cfg.Player.FramePeriod)
	anim := timer.FromSeconds(float64(period), timer.Repeating)
	playing := true

	for !rl.WindowShouldClose() {
		if playing {
			dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
			for i := anim.Tick(dt).TimesFinishedThisTick(); i > 0; i-- {
				sprite.Advance()
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Whole atlas with the frame grid
		sheetScale := float32(previewSize) / float32(max(tex.Width, tex.Height, 1))
		rl.DrawTextureEx(tex, rl.NewVector2(10, 10), 0, sheetScale, rl.White)
		for i := 0; i < sprite.Len; i++ {
			x, y, w, h := atlas.Layout.Frame(i)
			c := rl.LightGray
			if i == sprite.Index {
				c = rl.Red
			}
			rl.DrawRectangleLinesEx(rl.NewRectangle(10+x*sheetScale, 10+y*sheetScale, w*sheetScale, h*sheetScale), 2, c)
		}

		// Current frame, enlarged with point filtering
		x, y, w, h := atlas.Layout.Frame(sprite.Index)
		rl.DrawTexturePro(
			tex,
			rl.NewRectangle(x, y, w, h),
			rl.NewRectangle(20+previewSize, 10, previewSize/2, previewSize/2),
			rl.NewVector2(0, 0),
			0,
			rl.White,
		)
		rl.DrawRectangleLines(20+previewSize, 10, previewSize/2, previewSize/2, rl.DarkGray)

		statsY := int32(previewSize + 30)
		rl.DrawText(fmt.Sprintf("Frame: %d / %d", sprite.Index, sprite.Len), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Path: %s", atlas.Path), 15, statsY+20, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Tile: %dx%d", sprite.TileW, sprite.TileH), 15, statsY+40, 16, rl.DarkGray)

		// Controls
		py := float32(10 + previewSize/2 + 20)
		px := float32(20 + previewSize)
		rl.DrawText("Frame period (seconds)", int32(px), int32(py), 14, rl.Gray)
		py += 18
		newPeriod := gui.SliderBar(
			rl.Rectangle{X: px, Y: py, Width: float32(panelWidth - 80), Height: 20},
			"0.05", "2.0",
			period, 0.05, 2.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", period), int32(px+float32(panelWidth-70)), int32(py+2), 16, rl.DarkGray)
		if newPeriod != period {
			period = newPeriod
			anim = timer.FromSeconds(float64(period), timer.Repeating)
		}
		py += 40

		if gui.Button(rl.Rectangle{X: px, Y: py, Width: 120, Height: 30}, toggleText(playing, "Pause", "Play")) {
			playing = !playing
		}
		if gui.Button(rl.Rectangle{X: px + 130, Y: py, Width: 120, Height: 30}, "Next Frame") {
			sprite.Advance()
		}
		py += 45

		if gui.Button(rl.Rectangle{X: px, Y: py, Width: 120, Height: 30}, "Reset") {
			sprite.Index = cfg.Player.StartIndex
			anim.Reset()
		}
		py += 50

		yaml := fmt.Sprintf("player:\n  start_index: %d\n  frame_period: %.2f", cfg.Player.StartIndex, period)
		rl.DrawText("YAML Config:", int32(px), int32(py), 16, rl.DarkGray)
		rl.DrawText(yaml, int32(px), int32(py+22), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(px), windowHeight-30, 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
