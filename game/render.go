package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/boidhunt/ui"
)

var (
	backgroundColor = rl.NewColor(16, 20, 28, 255)
	boidColor       = rl.NewColor(120, 200, 255, 255)
	bulletColor     = rl.NewColor(255, 210, 90, 255)
	targetColor     = rl.NewColor(255, 90, 110, 200)
)

// Draw renders the game state.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	g.drawBoids()
	g.drawBullets()
	g.drawTarget()

	g.avoidanceFactor = g.hud.Draw(ui.State{
		Stance:          g.stance.String(),
		Boids:           g.boidCount,
		Bullets:         g.bulletCount,
		Tick:            g.tick,
		Paused:          g.paused,
		AvoidanceFactor: g.avoidanceFactor,
		MaxAvoidance:    float32(g.config().Boid.MaxAvoidance),
	})

	rl.EndDrawing()
}

// drawBoids renders each boid as a triangle pointing along its heading.
func (g *Game) drawBoids() {
	size := float32(g.config().Boid.Size) * g.camera.Zoom

	query := g.boidFilter.Query()
	for query.Next() {
		pos, rot, _ := query.Get()
		if !g.camera.IsVisible(pos.X, pos.Y, size) {
			continue
		}

		sx, sy := g.camera.WorldToScreen(pos.X, pos.Y)

		sin := float32(math.Sin(float64(rot.Angle)))
		cos := float32(math.Cos(float64(rot.Angle)))

		// Local-space triangle with the nose on the heading axis,
		// rotated by the facing angle. Vertex order matters: raylib
		// culls triangles wound the wrong way.
		nose := rotatePoint(0, size, sin, cos)
		right := rotatePoint(size*0.6, -size*0.6, sin, cos)
		left := rotatePoint(-size*0.6, -size*0.6, sin, cos)

		rl.DrawTriangle(
			rl.Vector2{X: sx + nose.X, Y: sy + nose.Y},
			rl.Vector2{X: sx + right.X, Y: sy + right.Y},
			rl.Vector2{X: sx + left.X, Y: sy + left.Y},
			boidColor,
		)
	}
}

// drawBullets renders bullets as small quads oriented by velocity.
func (g *Game) drawBullets() {
	cfg := g.config()
	half := float32(cfg.Bullet.Size) * g.camera.Zoom
	side := half * 2

	query := g.bulletFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		if !g.camera.IsVisible(pos.X, pos.Y, side) {
			continue
		}

		sx, sy := g.camera.WorldToScreen(pos.X, pos.Y)
		rl.DrawRectanglePro(
			rl.Rectangle{X: sx, Y: sy, Width: side, Height: side},
			rl.Vector2{X: half, Y: half},
			0,
			bulletColor,
		)
	}
}

// drawTarget marks the shared pursuit target.
func (g *Game) drawTarget() {
	sx, sy := g.camera.WorldToScreen(g.targetX, g.targetY)
	r := 4 * g.camera.Zoom
	rl.DrawCircleLines(int32(sx), int32(sy), r, targetColor)
	rl.DrawLine(int32(sx-r), int32(sy), int32(sx+r), int32(sy), targetColor)
	rl.DrawLine(int32(sx), int32(sy-r), int32(sx), int32(sy+r), targetColor)
}

// rotatePoint rotates a local-space point by precomputed sin/cos.
// Screen Y grows downward, so the math matches the facing convention
// where zero radians points up.
func rotatePoint(x, y, sin, cos float32) rl.Vector2 {
	return rl.Vector2{
		X: x*cos - y*sin,
		Y: x*sin + y*cos,
	}
}
