package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// WanderSystem adds a small random steering contribution so boids drift
// smoothly when nothing else pulls on them.
type WanderSystem struct {
	filter ecs.Filter3[components.Velocity, components.Steering, components.Boid]
	rng    *rand.Rand
}

// NewWanderSystem creates a new wander system using the given RNG.
func NewWanderSystem(w *ecs.World, rng *rand.Rand) *WanderSystem {
	return &WanderSystem{
		filter: *ecs.NewFilter3[components.Velocity, components.Steering, components.Boid](w),
		rng:    rng,
	}
}

// Update projects a circle center ahead along each boid's heading,
// displaces it by a randomly rotated offset and steers toward the
// result. maxAngle bounds the per-tick perturbation; it must stay small
// (a few degrees) or the motion turns into discontinuous jitter.
func (s *WanderSystem) Update(speed, radius, maxAngle float32) {
	query := s.filter.Query()
	for query.Next() {
		vel, steer, boid := query.Get()
		if !boid.Behaviors.Has(components.BehaviorWander) {
			continue
		}

		hx, hy := normalizeSafe(vel.X, vel.Y)
		centerX := hx * speed
		centerY := hy * speed

		angle := (s.rng.Float32()*2 - 1) * maxAngle
		offX, offY := rotate(0, radius, angle)

		nx, ny := normalizeSafe(centerX+offX, centerY+offY)
		steer.X += nx
		steer.Y += ny
	}
}
