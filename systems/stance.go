package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// Stance selects whether boids pursue or evade the target.
type Stance uint8

const (
	StanceFollow Stance = iota
	StanceEvade
)

// String returns the stance name for logging and the HUD.
func (s Stance) String() string {
	if s == StanceEvade {
		return "evade"
	}
	return "follow"
}

// Toggled returns the opposite stance.
func (s Stance) Toggled() Stance {
	if s == StanceFollow {
		return StanceEvade
	}
	return StanceFollow
}

// StanceSystem swaps the Seek/Flee behavior tags on every boid when the
// stance changes. After Apply, each boid holds exactly one of the two.
type StanceSystem struct {
	filter ecs.Filter1[components.Boid]
}

// NewStanceSystem creates a new stance system.
func NewStanceSystem(w *ecs.World) *StanceSystem {
	return &StanceSystem{
		filter: *ecs.NewFilter1[components.Boid](w),
	}
}

// Apply sets the behavior tags matching the given stance on all boids.
func (s *StanceSystem) Apply(stance Stance) {
	query := s.filter.Query()
	for query.Next() {
		boid := query.Get()
		if stance == StanceFollow {
			boid.Behaviors = boid.Behaviors.Without(components.BehaviorFlee).With(components.BehaviorSeek)
		} else {
			boid.Behaviors = boid.Behaviors.Without(components.BehaviorSeek).With(components.BehaviorFlee)
		}
	}
}
