package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/octosurvivors/inspector"
)

// Inspector field colors
var (
	colorFieldBarBg   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	colorFieldBarFill = rl.Color{R: 100, G: 180, B: 100, A: 255}
	colorFieldBarHigh = rl.Color{R: 180, G: 80, B: 80, A: 255}
	colorFieldText    = rl.Color{R: 220, G: 220, B: 220, A: 255}
	colorFieldDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	colorAngleBg      = rl.Color{R: 50, G: 50, B: 60, A: 255}
	colorAngleNeedle  = rl.Color{R: 255, G: 200, B: 100, A: 255}
	colorBoolOn       = rl.Color{R: 100, G: 200, B: 100, A: 255}
	colorBoolOff      = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

// DrawInspectField renders a component field using its widget type and
// returns the height used.
func DrawInspectField(x, y int32, field inspector.Field) int32 {
	switch field.Widget {
	case inspector.WidgetBar:
		if v, ok := inspector.GetFloatValue(field.Value); ok {
			caption := inspector.FormatValue(field.Value, field.Options["fmt"])
			if _, isFloat := field.Value.(float32); isFloat {
				v /= inspector.GetMax(field.Options)
			}
			return drawFieldBar(x, y, field.Name, v, caption)
		}

	case inspector.WidgetAngle:
		if v, ok := inspector.GetFloatValue(field.Value); ok {
			return drawFieldAngle(x, y, field.Name, v)
		}

	case inspector.WidgetBool:
		if v, ok := field.Value.(bool); ok {
			return drawFieldBool(x, y, field.Name, v)
		}
	}
	return drawFieldLabel(x, y, field.Name, inspector.FormatValue(field.Value, field.Options["fmt"]))
}

// InspectFieldHeight returns the height DrawInspectField uses for field.
func InspectFieldHeight(field inspector.Field) int32 {
	if field.Widget == inspector.WidgetAngle {
		if _, ok := inspector.GetFloatValue(field.Value); ok {
			return 44
		}
	}
	return 18
}

func drawFieldLabel(x, y int32, name, text string) int32 {
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 14, colorFieldText)
	return 18
}

func drawFieldBar(x, y int32, name string, ratio float32, caption string) int32 {
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	barWidth := int32(100)
	barHeight := int32(14)

	rl.DrawText(name, x, y, 14, colorFieldDim)

	barX := x + 90
	rl.DrawRectangle(barX, y, barWidth, barHeight, colorFieldBarBg)

	fill := colorFieldBarFill
	if ratio > 0.8 {
		fill = colorFieldBarHigh
	}
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*ratio), barHeight, fill)

	rl.DrawText(caption, barX+barWidth+5, y, 12, colorFieldDim)
	return 18
}

func drawFieldAngle(x, y int32, name string, radians float32) int32 {
	size := int32(40)
	centerX := x + 90 + size/2
	centerY := y + size/2

	rl.DrawText(name, x, y+size/2-7, 14, colorFieldDim)

	rl.DrawCircle(centerX, centerY, float32(size/2), colorAngleBg)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), colorFieldDim)

	// Yaw 0 looks down -Z, drawn as screen up
	needleLen := float32(size/2 - 4)
	endX := float32(centerX) - needleLen*float32(math.Sin(float64(radians)))
	endY := float32(centerY) - needleLen*float32(math.Cos(float64(radians)))
	rl.DrawLineEx(
		rl.Vector2{X: float32(centerX), Y: float32(centerY)},
		rl.Vector2{X: endX, Y: endY},
		2,
		colorAngleNeedle,
	)

	degrees := radians * 180 / math.Pi
	rl.DrawText(fmt.Sprintf("%.0f deg", degrees), x+90+size+5, y+size/2-7, 14, colorFieldDim)

	return size + 4
}

func drawFieldBool(x, y int32, name string, value bool) int32 {
	rl.DrawText(name, x, y, 14, colorFieldDim)

	indicatorX := x + 90
	indicatorSize := int32(14)

	color := colorBoolOff
	text := "OFF"
	if value {
		color = colorBoolOn
		text = "ON"
	}

	rl.DrawRectangle(indicatorX, y, indicatorSize, indicatorSize, color)
	rl.DrawText(text, indicatorX+indicatorSize+5, y, 14, color)
	return 18
}
