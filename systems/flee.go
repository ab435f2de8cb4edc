package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// FleeSystem steers boids away from the target position.
type FleeSystem struct {
	filter ecs.Filter3[components.Position, components.Steering, components.Boid]
}

// NewFleeSystem creates a new flee system.
func NewFleeSystem(w *ecs.World) *FleeSystem {
	return &FleeSystem{
		filter: *ecs.NewFilter3[components.Position, components.Steering, components.Boid](w),
	}
}

// Update adds a flee contribution for every boid with the Flee behavior.
// The mirror of seek: full strength while within slowingRadius of the
// threat, attenuating as radius/distance once outside it.
func (s *FleeSystem) Update(targetX, targetY, slowingRadius float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, steer, boid := query.Get()
		if !boid.Behaviors.Has(components.BehaviorFlee) {
			continue
		}

		dx := pos.X - targetX
		dy := pos.Y - targetY
		dist := length(dx, dy)

		nx, ny := normalizeSafe(dx, dy)
		if dist >= slowingRadius {
			falloff := slowingRadius / dist
			nx *= falloff
			ny *= falloff
		}

		steer.X += nx
		steer.Y += ny
	}
}
