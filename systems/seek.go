// Package systems contains ECS systems for the simulation.
//
// Steering contributors (seek, flee, wander, avoid) each add a desired
// velocity into the agent's Steering accumulator. The movement system
// consumes the sum after all contributors have run. Contributions are
// pure additions, so contributor order within a tick does not matter.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// SeekSystem steers boids toward the target position.
type SeekSystem struct {
	filter ecs.Filter3[components.Position, components.Steering, components.Boid]
}

// NewSeekSystem creates a new seek system.
func NewSeekSystem(w *ecs.World) *SeekSystem {
	return &SeekSystem{
		filter: *ecs.NewFilter3[components.Position, components.Steering, components.Boid](w),
	}
}

// Update adds a seek contribution for every boid with the Seek behavior.
// Within slowingRadius of the target the contribution scales down
// linearly with distance, producing smooth arrival instead of overshoot.
func (s *SeekSystem) Update(targetX, targetY, slowingRadius float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, steer, boid := query.Get()
		if !boid.Behaviors.Has(components.BehaviorSeek) {
			continue
		}

		dx := targetX - pos.X
		dy := targetY - pos.Y
		dist := length(dx, dy)

		nx, ny := normalizeSafe(dx, dy)
		if dist <= slowingRadius {
			arrival := dist / slowingRadius
			nx *= arrival
			ny *= arrival
		}

		steer.X += nx
		steer.Y += ny
	}
}
