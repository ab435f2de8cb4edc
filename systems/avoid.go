package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// AvoidSystem applies pairwise repulsion between avoidance-tagged boids.
//
// One computation per unordered pair updates both members with opposite
// signs, halving the O(n^2) work. Component pointers are collected into
// scratch slices first; no structural change happens between collection
// and the pairwise pass, so the pointers stay valid.
type AvoidSystem struct {
	filter ecs.Filter3[components.Position, components.Steering, components.Boid]

	// Scratch buffers reused across ticks
	positions []components.Position
	steerings []*components.Steering
}

// NewAvoidSystem creates a new avoidance system.
func NewAvoidSystem(w *ecs.World) *AvoidSystem {
	return &AvoidSystem{
		filter: *ecs.NewFilter3[components.Position, components.Steering, components.Boid](w),
	}
}

// Update applies repulsion inversely proportional to squared distance,
// scaled by avoidanceFactor. Coincident boids contribute nothing rather
// than dividing by zero.
func (s *AvoidSystem) Update(avoidanceFactor float32) {
	s.positions = s.positions[:0]
	s.steerings = s.steerings[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, steer, boid := query.Get()
		if !boid.Behaviors.Has(components.BehaviorAvoid) {
			continue
		}
		s.positions = append(s.positions, *pos)
		s.steerings = append(s.steerings, steer)
	}

	for i := 0; i < len(s.positions); i++ {
		for j := i + 1; j < len(s.positions); j++ {
			dx := s.positions[j].X - s.positions[i].X
			dy := s.positions[j].Y - s.positions[i].Y
			dSq := dx*dx + dy*dy
			if dSq == 0 {
				continue
			}

			nx, ny := normalizeSafe(dx, dy)
			fx := -nx / dSq * avoidanceFactor
			fy := -ny / dSq * avoidanceFactor

			s.steerings[i].X += fx
			s.steerings[i].Y += fy
			s.steerings[j].X -= fx
			s.steerings[j].Y -= fy
		}
	}
}
