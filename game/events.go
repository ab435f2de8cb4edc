package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// Signals buffers one-shot requests raised between ticks. The step
// drains and clears them, so each request takes effect exactly once.
type Signals struct {
	Spawns          []components.Position
	Shots           int
	StanceToggles   int
	AvoidanceDeltas []float32
}

// BoidShot pairs a boid with the bullet that struck it.
type BoidShot struct {
	Boid   ecs.Entity
	Bullet ecs.Entity
}

// RequestSpawn queues a boid spawn at the given world position for the
// next tick.
func (g *Game) RequestSpawn(x, y float32) {
	g.signals.Spawns = append(g.signals.Spawns, components.Position{X: x, Y: y})
}

// RequestShoot queues one volley: every moving boid fires a bullet on
// the next tick.
func (g *Game) RequestShoot() {
	g.signals.Shots++
}

// RequestStanceToggle queues a follow/evade flip for the next tick.
// An even number of pending toggles cancels out.
func (g *Game) RequestStanceToggle() {
	g.signals.StanceToggles++
}

// AdjustAvoidance queues a change to the inter-agent repulsion gain.
func (g *Game) AdjustAvoidance(delta float32) {
	g.signals.AvoidanceDeltas = append(g.signals.AvoidanceDeltas, delta)
}

// SetTarget moves the shared pursuit target in world coordinates.
func (g *Game) SetTarget(x, y float32) {
	g.targetX = x
	g.targetY = y
}
