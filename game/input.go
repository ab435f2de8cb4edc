package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes mouse and keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// The pursuit target tracks the pointer continuously.
	mousePos := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(mousePos.X, mousePos.Y)
	g.SetTarget(wx, wy)

	if rl.IsKeyPressed(rl.KeySpace) {
		g.RequestSpawn(wx, wy)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.RequestShoot()
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.RequestStanceToggle()
	}

	g.handleWheelInput()
	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.camera != nil {
		g.camera.Resize(w, h)
	}
}

// handleWheelInput routes the mouse wheel: plain scroll tunes the
// avoidance gain, ctrl+scroll zooms the camera.
func (g *Game) handleWheelInput() {
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove == 0 {
		return
	}

	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		zoomFactor := float32(1.0) + wheelMove*float32(g.config().Input.ZoomStep)
		g.camera.ZoomBy(zoomFactor)
		return
	}

	g.AdjustAvoidance(wheelMove * float32(g.config().Boid.WheelGain))
}

// handleCameraInput processes camera pan controls.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(g.config().Input.PanSpeed) / g.camera.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}
}
