package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/octosurvivors/game"
	"github.com/pthm-cable/octosurvivors/state"
	"github.com/pthm-cable/octosurvivors/telemetry"
)

// ControlsLegend is shown along the bottom edge of the screen.
const ControlsLegend = "Esc: free camera | WASD Space Shift: fly | Home: reset view | F1: inspector | F3: diagnostics"

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	status   PanelDescriptor
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		status:   statusPanel(),
	}
}

// Draw renders the title, the status panel and the controls legend.
func (h *HUD) Draw(title string, s game.Status, screenW, screenH int32) {
	rl.DrawText(title, h.renderer.Theme.Padding, screenH-50, 20, rl.White)
	h.renderer.DrawPanelDescriptor(h.status, s, screenW, screenH)
	rl.DrawText(ControlsLegend, h.renderer.Theme.Padding, screenH-25, 14, rl.Gray)
}

// DrawLoading renders the splash shown while assets load.
func (h *HUD) DrawLoading(s game.Status, screenW, screenH int32) {
	text := "Loading..."
	color := rl.LightGray
	if s.LoadErr != nil {
		text = "Failed to load assets"
		color = rl.Red
	}
	w := rl.MeasureText(text, 30)
	rl.DrawText(text, screenW/2-w/2, screenH/2-15, 30, color)
	if s.LoadErr != nil {
		msg := s.LoadErr.Error()
		mw := rl.MeasureText(msg, 14)
		rl.DrawText(msg, screenW/2-mw/2, screenH/2+25, 14, rl.Gray)
	}
}

func statusOf(data any) game.Status {
	return data.(game.Status)
}

// statusPanel describes the state panel in terms of game.Status.
func statusPanel() PanelDescriptor {
	return PanelDescriptor{
		ID:     "status",
		Title:  "Realm Status",
		Width:  260,
		Anchor: AnchorTopLeft,
		Sections: []SectionDescriptor{
			{
				ID:    "states",
				Title: "States",
				Fields: []FieldDescriptor{
					{ID: "game_state", Label: "Game", Widget: WidgetText,
						TextGetter: func(d any) string { return statusOf(d).GameState.String() },
						ColorGetter: func(d any) rl.Color {
							if statusOf(d).GameState == state.Ready {
								return rl.Green
							}
							return rl.Orange
						}},
					{ID: "free_cam_state", Label: "Camera", Widget: WidgetText,
						TextGetter: func(d any) string { return statusOf(d).FreeCamState.String() },
						ColorGetter: func(d any) rl.Color {
							if statusOf(d).FreeCamState == state.Free {
								return rl.SkyBlue
							}
							return rl.LightGray
						}},
					{ID: "cursor", Label: "Cursor", Widget: WidgetText,
						TextGetter: func(d any) string {
							c := statusOf(d).Cursor
							return fmt.Sprintf("%s, visible=%t", c.Grab, c.Visible)
						}},
					{ID: "toggles", Label: "Toggles", Widget: WidgetText,
						TextGetter: func(d any) string { return fmt.Sprintf("%d", statusOf(d).Toggles) }},
				},
			},
			{
				ID:    "world",
				Title: "World",
				Fields: []FieldDescriptor{
					{ID: "tick", Label: "Tick", Widget: WidgetText,
						TextGetter: func(d any) string { return fmt.Sprintf("%d", statusOf(d).Tick) }},
					{ID: "sim_time", Label: "Time", Widget: WidgetText, Format: "%.1fs",
						Getter: func(d any) float32 { return float32(statusOf(d).SimTime) }},
					{ID: "entities", Label: "Entities", Widget: WidgetText,
						TextGetter: func(d any) string { return fmt.Sprintf("%d", statusOf(d).Entities) }},
					{ID: "bullets", Label: "Bullets", Widget: WidgetText,
						TextGetter: func(d any) string { return fmt.Sprintf("%d", statusOf(d).Bullets) },
						Visible:    func(d any) bool { return statusOf(d).TowerShooting }},
					{ID: "tower_shooting", Label: "Towers", Widget: WidgetText,
						TextGetter: func(d any) string {
							if statusOf(d).TowerShooting {
								return "shooting"
							}
							return "idle"
						}},
				},
			},
			{
				ID:    "assets",
				Title: "Assets",
				Fields: []FieldDescriptor{
					{ID: "assets_ready", Label: "Atlas", Widget: WidgetText,
						TextGetter: func(d any) string {
							if statusOf(d).AssetsReady {
								return "ready"
							}
							return "loading"
						}},
					{ID: "textures", Label: "Textures", Widget: WidgetText,
						TextGetter: func(d any) string { return fmt.Sprintf("%d", statusOf(d).Textures) }},
					{ID: "load_err", Label: "Error", Widget: WidgetText,
						TextGetter:  func(d any) string { return statusOf(d).LoadErr.Error() },
						ColorGetter: func(any) rl.Color { return rl.Red },
						Visible:     func(d any) bool { return statusOf(d).LoadErr != nil }},
				},
			},
		},
	}
}

// PerfPanel renders the system performance panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders frame timing and the per-phase breakdown in schedule order,
// returning the panel's bottom edge.
func (p *PerfPanel) Draw(s game.Status) int32 {
	r := p.renderer
	width := int32(300)
	height := int32(60 + 14*len(telemetry.Phases))
	r.DrawPanel(p.x, p.y, width, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding

	rl.DrawText("System Performance", x, y, 16, rl.White)
	y += 20

	perf := s.Perf
	rl.DrawText(fmt.Sprintf("Tick: %s  FPS: %.0f", perf.AvgTickDuration.Round(time.Microsecond), perf.FPS), x, y, 14, rl.Yellow)
	y += 18

	for _, phase := range telemetry.Phases {
		avg := perf.PhaseAvg[phase]
		pct := perf.PhasePct[phase]

		color := rl.LightGray
		if pct > 20 {
			color = rl.Red
		} else if pct > 10 {
			color = rl.Orange
		}

		displayName := phase
		if s.Registry != nil {
			displayName = s.Registry.GetName(phase)
		}

		rl.DrawText(
			fmt.Sprintf("%-16s %8s %5.1f%%", displayName, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
	return p.y + height
}
