package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// Bounds represents the simulation bounds.
type Bounds struct {
	Width, Height float32
}

// PhysicsSystem advances entity positions from their velocities.
// It covers everything that moves: boids and bullets alike.
type PhysicsSystem struct {
	filter ecs.Filter2[components.Position, components.Velocity]
	bounds Bounds
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, bounds Bounds) *PhysicsSystem {
	return &PhysicsSystem{
		filter: *ecs.NewFilter2[components.Position, components.Velocity](w),
		bounds: bounds,
	}
}

// Update advances positions by one step of dt seconds.
func (s *PhysicsSystem) Update(dt float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	}
}

// InBounds reports whether a point lies inside the simulation bounds,
// expanded by margin on every side.
func (s *PhysicsSystem) InBounds(x, y, margin float32) bool {
	return x >= -margin && x <= s.bounds.Width+margin &&
		y >= -margin && y <= s.bounds.Height+margin
}
