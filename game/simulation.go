package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/systems"
)

// step advances the simulation by exactly one tick.
//
// Order within a tick: drain control signals, run the steering
// contributors, integrate motion, detect and resolve collisions, then
// apply spawn and shoot requests so new entities first act next tick.
func (g *Game) step() {
	cfg := g.config()

	g.drainStanceToggles()
	g.drainAvoidanceDeltas()

	g.seek.Update(g.targetX, g.targetY, float32(cfg.Boid.SlowingRadius))
	g.flee.Update(g.targetX, g.targetY, float32(cfg.Boid.SlowingRadius))
	g.wander.Update(float32(cfg.Boid.Speed), cfg.Derived.WanderRadius, float32(cfg.Boid.WanderAngle))
	g.avoid.Update(g.avoidanceFactor)

	meanSteering := g.sampleSteering()

	g.movement.Update(float32(cfg.Boid.SteeringForce), float32(cfg.Boid.Speed))
	g.physics.Update(cfg.Derived.DT32)

	g.resolveCollisions()

	g.drainSpawns()
	g.drainShots()
	g.cullBullets()

	g.collector.EndTick(g.boidCount, g.bulletCount, meanSteering)
	g.tick++

	if g.tick%g.statsWindowTicks == 0 {
		g.flushStats()
	}
}

func (g *Game) drainStanceToggles() {
	if g.signals.StanceToggles%2 == 1 {
		g.stance = g.stance.Toggled()
		g.stanceSys.Apply(g.stance)
	}
	g.signals.StanceToggles = 0
}

func (g *Game) drainAvoidanceDeltas() {
	maxAvoid := float32(g.config().Boid.MaxAvoidance)

	// Clamp per event, not once over the sum: a delta that saturates the
	// gain must not cancel against a later one in the same tick.
	for _, delta := range g.signals.AvoidanceDeltas {
		g.avoidanceFactor += delta
		if g.avoidanceFactor < 0 {
			g.avoidanceFactor = 0
		}
		if g.avoidanceFactor > maxAvoid {
			g.avoidanceFactor = maxAvoid
		}
	}
	g.signals.AvoidanceDeltas = g.signals.AvoidanceDeltas[:0]
}

// sampleSteering returns the mean accumulated steering magnitude over
// all boids, taken before the movement system resets the accumulators.
func (g *Game) sampleSteering() float64 {
	var sum float64
	var n int

	query := g.steerFilter.Query()
	for query.Next() {
		steer, _ := query.Get()
		sum += math.Hypot(float64(steer.X), float64(steer.Y))
		n++
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// resolveCollisions finds bullet overlaps and despawns both members of
// every bullet-boid hit. Bullets pass through each other.
func (g *Game) resolveCollisions() {
	cfg := g.config()
	g.pairs = g.collision.Update(g.pairs[:0], float32(cfg.Boid.Size), float32(cfg.Bullet.Size))

	var deadBoids, deadBullets []ecs.Entity
	for _, pair := range g.pairs {
		shot, ok := g.classify(pair)
		if !ok {
			continue
		}
		deadBoids = append(deadBoids, shot.Boid)
		deadBullets = append(deadBullets, shot.Bullet)
		g.collector.RecordHit()
	}

	// A bullet can overlap two boids in one tick; guard against double
	// removal.
	for _, e := range deadBoids {
		if !g.world.Alive(e) || !g.boidMap.HasAll(e) {
			continue
		}
		g.world.RemoveEntity(e)
		g.boidCount--
	}
	for _, e := range deadBullets {
		if !g.world.Alive(e) || !g.bulletMap.HasAll(e) {
			continue
		}
		g.world.RemoveEntity(e)
		g.bulletCount--
	}
}

// classify resolves a collision pair into a boid-bullet hit, in either
// order. Pairs of two bullets are not hits.
func (g *Game) classify(pair systems.CollisionPair) (BoidShot, bool) {
	if g.boidMap.HasAll(pair.A) && g.bulletMap.HasAll(pair.B) {
		return BoidShot{Boid: pair.A, Bullet: pair.B}, true
	}
	if g.boidMap.HasAll(pair.B) && g.bulletMap.HasAll(pair.A) {
		return BoidShot{Boid: pair.B, Bullet: pair.A}, true
	}
	return BoidShot{}, false
}

func (g *Game) drainSpawns() {
	cfg := g.config()
	for _, pos := range g.signals.Spawns {
		if g.boidCount >= cfg.Population.Max {
			break
		}
		g.spawnBoid(pos.X, pos.Y)
	}
	g.signals.Spawns = g.signals.Spawns[:0]
}

// drainShots fires one volley per pending shoot request. Boids at rest
// have no heading, so they sit the volley out.
func (g *Game) drainShots() {
	if g.signals.Shots == 0 {
		return
	}
	volleys := g.signals.Shots
	g.signals.Shots = 0

	type shooter struct {
		x, y   float32
		hx, hy float32
	}
	var shooters []shooter

	query := g.shootFilter.Query()
	for query.Next() {
		pos, vel, _ := query.Get()
		if vel.X == 0 && vel.Y == 0 {
			continue
		}
		mag := float32(math.Hypot(float64(vel.X), float64(vel.Y)))
		shooters = append(shooters, shooter{
			x: pos.X, y: pos.Y,
			hx: vel.X / mag, hy: vel.Y / mag,
		})
	}

	for v := 0; v < volleys; v++ {
		for _, sh := range shooters {
			g.spawnBullet(sh.x, sh.y, sh.hx, sh.hy)
		}
		g.collector.RecordShot(len(shooters))
	}
}

// cullBullets removes bullets that left the padded world bounds.
func (g *Game) cullBullets() {
	cfg := g.config()
	margin := float32(cfg.Bullet.Speed) // one second of travel past the edge

	var gone []ecs.Entity
	query := g.bulletFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		if !g.physics.InBounds(pos.X, pos.Y, margin) {
			gone = append(gone, query.Entity())
		}
	}

	for _, e := range gone {
		g.world.RemoveEntity(e)
		g.bulletCount--
	}
}

func (g *Game) flushStats() {
	stats := g.collector.Flush(g.tick)

	if g.output != nil {
		if err := g.output.WriteStats(stats); err != nil {
			logWriteError(err)
		}
	}
	if g.logStats {
		logWindowStats(g, stats)
	}
}
