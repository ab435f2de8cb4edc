package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
)

// CollisionPair reports two entities that started overlapping this tick.
type CollisionPair struct {
	A, B ecs.Entity
}

// CollisionSystem detects circle overlaps between bullets and everything
// else. Only bullets are swept; boid-boid contacts are not collision
// events, matching the projectile-only collision interest of the game.
type CollisionSystem struct {
	grid         *SpatialGrid
	boidFilter   ecs.Filter2[components.Position, components.Boid]
	bulletFilter ecs.Filter2[components.Position, components.Bullet]

	// Scratch buffers reused across ticks
	bullets []gridEntry
	nearby  []gridEntry
	seen    map[CollisionPair]struct{}
}

// NewCollisionSystem creates a collision system over the given grid.
func NewCollisionSystem(w *ecs.World, grid *SpatialGrid) *CollisionSystem {
	return &CollisionSystem{
		grid:         grid,
		boidFilter:   *ecs.NewFilter2[components.Position, components.Boid](w),
		bulletFilter: *ecs.NewFilter2[components.Position, components.Bullet](w),
		seen:         make(map[CollisionPair]struct{}),
	}
}

// Update rebuilds the grid and returns the collision pairs started this
// tick, appended to dst. Each unordered pair is reported once.
func (s *CollisionSystem) Update(dst []CollisionPair, boidRadius, bulletRadius float32) []CollisionPair {
	s.grid.Clear()
	s.bullets = s.bullets[:0]
	clear(s.seen)

	query := s.boidFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		s.grid.Insert(query.Entity(), pos.X, pos.Y, boidRadius)
	}

	bq := s.bulletFilter.Query()
	for bq.Next() {
		pos, _ := bq.Get()
		entry := gridEntry{E: bq.Entity(), X: pos.X, Y: pos.Y, Radius: bulletRadius}
		s.grid.Insert(entry.E, entry.X, entry.Y, entry.Radius)
		s.bullets = append(s.bullets, entry)
	}

	for _, bullet := range s.bullets {
		s.nearby = s.grid.QueryCircleInto(s.nearby[:0], bullet.X, bullet.Y, bullet.Radius, bullet.E)
		for _, other := range s.nearby {
			pair := CollisionPair{A: other.E, B: bullet.E}
			if _, ok := s.seen[pair]; ok {
				continue
			}
			if _, ok := s.seen[CollisionPair{A: bullet.E, B: other.E}]; ok {
				continue
			}
			s.seen[pair] = struct{}{}
			dst = append(dst, pair)
		}
	}

	return dst
}
