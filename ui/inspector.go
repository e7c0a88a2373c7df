package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/inspector"
)

const (
	inspectorWidth = int32(340)
	rowHeight      = int32(22)
	maxRows        = 12
)

// Inspector renders the world inspector: a clickable entity list and the
// components of the selected entity.
type Inspector struct {
	renderer  *Renderer
	lister    *inspector.Lister
	describer *inspector.Describer

	selected    ecs.Entity
	hasSelected bool
	scroll      int
}

// NewInspector creates an inspector over w.
func NewInspector(w *ecs.World) *Inspector {
	return &Inspector{
		renderer:  NewRenderer(),
		lister:    inspector.NewLister(w),
		describer: inspector.NewDescriber(w),
	}
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Draw renders the panel anchored to the right edge of the screen.
func (ins *Inspector) Draw(screenW, screenH int32) {
	r := ins.renderer
	pad := r.Theme.Padding
	x := screenW - inspectorWidth - pad
	y := pad

	entries := ins.lister.List()
	if ins.scroll > len(entries)-maxRows {
		ins.scroll = max(0, len(entries)-maxRows)
	}

	// Selected entity may have been despawned
	var sections []inspector.Section
	if ins.hasSelected {
		sections = ins.describer.Describe(ins.selected)
		if sections == nil {
			ins.Deselect()
		}
	}

	listRows := min(len(entries), maxRows)
	height := pad*3 + 20 + int32(listRows)*rowHeight + 26
	for _, s := range sections {
		height += r.Theme.LineHeight + 4
		for _, f := range s.Fields {
			height += InspectFieldHeight(f)
		}
	}
	height = min(height, screenH-pad*2)
	r.DrawPanel(x, y, inspectorWidth, height)

	cx := x + pad
	cy := y + pad
	rl.DrawText(fmt.Sprintf("World Inspector (%d)", len(entries)), cx, cy, 16, rl.White)
	cy += 20

	// Entity list
	width := float32(inspectorWidth - pad*2)
	for i := ins.scroll; i < ins.scroll+listRows; i++ {
		e := entries[i]
		label := fmt.Sprintf("#%d %s", e.Entity.ID(), e.Name)
		if ins.hasSelected && e.Entity == ins.selected {
			label = "> " + label
		}
		if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(cy), Width: width, Height: float32(rowHeight - 2)}, label) {
			ins.selected = e.Entity
			ins.hasSelected = true
		}
		cy += rowHeight
	}

	// Paging
	half := (width - 10) / 2
	if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(cy), Width: half, Height: 20}, "Up") && ins.scroll > 0 {
		ins.scroll--
	}
	if gui.Button(rl.Rectangle{X: float32(cx) + half + 10, Y: float32(cy), Width: half, Height: 20}, "Down") && ins.scroll+maxRows < len(entries) {
		ins.scroll++
	}
	cy += 26 + pad

	// Components
	for _, s := range sections {
		if cy > y+height-r.Theme.LineHeight {
			break
		}
		cy = r.DrawSectionHeader(cx, cy, s.Title) + 4
		for _, f := range s.Fields {
			cy += DrawInspectField(cx+8, cy, f)
		}
	}
}
