// Package components defines ECS components for the simulation.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity.
type Velocity struct {
	X, Y float32
}

// Rotation represents an entity's facing angle in radians.
// Zero points along the local up axis; derived from velocity each tick.
type Rotation struct {
	Angle float32
}

// Steering is the per-agent accumulator for this tick's behavior
// contributions. Contributors add into it; the movement system consumes
// and resets it. Accumulation is pure addition, so contributor order
// does not matter.
type Steering struct {
	X, Y float32
}

// Behavior is a bitset of active steering behaviors on a boid.
// Seek and Flee are mutually exclusive; the stance controller swaps them.
type Behavior uint8

const (
	BehaviorSeek Behavior = 1 << iota
	BehaviorFlee
	BehaviorWander
	BehaviorAvoid
)

// DefaultBehaviors is the tag set assigned to freshly spawned boids.
const DefaultBehaviors = BehaviorSeek | BehaviorWander | BehaviorAvoid

// Has reports whether all bits of b2 are set.
func (b Behavior) Has(b2 Behavior) bool {
	return b&b2 == b2
}

// With returns the set with the bits of b2 added.
func (b Behavior) With(b2 Behavior) Behavior {
	return b | b2
}

// Without returns the set with the bits of b2 cleared.
func (b Behavior) Without(b2 Behavior) Behavior {
	return b &^ b2
}

// Boid marks an entity as a steering agent and holds its behavior set.
type Boid struct {
	Behaviors Behavior
}

// Bullet marks an entity as a projectile.
type Bullet struct{}
