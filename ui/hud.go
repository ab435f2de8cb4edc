// Package ui renders the in-game heads-up display.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State carries the values the HUD displays each frame.
type State struct {
	Stance          string
	Boids           int
	Bullets         int
	Tick            int64
	Paused          bool
	AvoidanceFactor float32
	MaxAvoidance    float32
}

// HUD draws the status panel and the avoidance slider.
type HUD struct {
	panelX, panelY int32
	panelW         int32
	showHelp       bool
}

// NewHUD creates a HUD anchored to the top-left corner.
func NewHUD() *HUD {
	return &HUD{
		panelX:   10,
		panelY:   10,
		panelW:   240,
		showHelp: true,
	}
}

// Draw renders the HUD and returns the avoidance factor, which may have
// been changed through the slider.
func (h *HUD) Draw(s State) float32 {
	x := h.panelX
	y := h.panelY

	rl.DrawRectangle(x-4, y-4, h.panelW, 118, rl.NewColor(0, 0, 0, 160))

	rl.DrawText(fmt.Sprintf("stance: %s", s.Stance), x, y, 16, rl.White)
	y += 20
	rl.DrawText(fmt.Sprintf("boids: %d  bullets: %d", s.Boids, s.Bullets), x, y, 16, rl.LightGray)
	y += 20
	status := fmt.Sprintf("tick: %d  fps: %d", s.Tick, rl.GetFPS())
	if s.Paused {
		status += "  [paused]"
	}
	rl.DrawText(status, x, y, 16, rl.LightGray)
	y += 24

	rl.DrawText("avoidance", x, y, 14, rl.Gray)
	y += 18
	factor := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(h.panelW - 60), Height: 18},
		"0", fmt.Sprintf("%.0f", s.MaxAvoidance),
		s.AvoidanceFactor, 0, s.MaxAvoidance,
	)
	rl.DrawText(fmt.Sprintf("%.0f", factor), x+h.panelW-52, y+2, 14, rl.LightGray)
	y += 28

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 60, Height: 20}, "Help") {
		h.showHelp = !h.showHelp
	}

	if h.showHelp {
		h.drawHelp()
	}

	return factor
}

// drawHelp lists the control bindings at the bottom of the screen.
func (h *HUD) drawHelp() {
	lines := []string{
		"space: spawn boid at cursor",
		"left click: all boids shoot",
		"right click: toggle follow/evade",
		"wheel: avoidance  ctrl+wheel: zoom",
		"arrows: pan  p: pause  f11: fullscreen",
	}

	y := int32(rl.GetScreenHeight()) - int32(len(lines))*18 - 10
	for _, line := range lines {
		rl.DrawText(line, 10, y, 14, rl.Gray)
		y += 18
	}
}
