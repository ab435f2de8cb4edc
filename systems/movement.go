package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// MovementSystem integrates accumulated steering into velocity.
// It must run after all steering contributors for the tick.
type MovementSystem struct {
	filter ecs.Filter4[components.Velocity, components.Rotation, components.Steering, components.Boid]
}

// NewMovementSystem creates a new movement system.
func NewMovementSystem(w *ecs.World) *MovementSystem {
	return &MovementSystem{
		filter: *ecs.NewFilter4[components.Velocity, components.Rotation, components.Steering, components.Boid](w),
	}
}

// Update scales the accumulated steering by forceGain and maxSpeed,
// applies the resulting velocity delta, clamps speed by magnitude,
// derives facing from the new velocity and resets the accumulator.
func (s *MovementSystem) Update(forceGain, maxSpeed float32) {
	query := s.filter.Query()
	for query.Next() {
		vel, rot, steer, _ := query.Get()

		desiredX := steer.X * forceGain * maxSpeed
		desiredY := steer.Y * forceGain * maxSpeed

		vel.X += desiredX - vel.X
		vel.Y += desiredY - vel.Y
		vel.X, vel.Y = limit(vel.X, vel.Y, maxSpeed)

		// Facing convention: zero radians points along local up
		if vel.X != 0 || vel.Y != 0 {
			rot.Angle = float32(math.Atan2(float64(-vel.X), float64(vel.Y)))
		}

		// Reset accumulator for the next tick
		steer.X = 0
		steer.Y = 0
	}
}
