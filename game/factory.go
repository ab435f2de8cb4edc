package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/components"
	"github.com/pthm-cable/boidhunt/systems"
)

// spawnBoid creates a boid at rest with the default behavior tags.
func (g *Game) spawnBoid(x, y float32) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	rot := components.Rotation{}
	steer := components.Steering{}
	boid := components.Boid{Behaviors: components.DefaultBehaviors}

	if g.stance == systems.StanceEvade {
		boid.Behaviors = boid.Behaviors.Without(components.BehaviorSeek).With(components.BehaviorFlee)
	}

	e := g.boidMapper.NewEntity(&pos, &vel, &rot, &steer, &boid)
	g.boidCount++
	g.collector.RecordSpawn()
	return e
}

// spawnBullet creates a bullet ahead of the shooter, moving along its
// heading at full bullet speed.
func (g *Game) spawnBullet(x, y, headingX, headingY float32) ecs.Entity {
	cfg := g.config()

	pos := components.Position{
		X: x + headingX*cfg.Derived.BulletOffset,
		Y: y + headingY*cfg.Derived.BulletOffset,
	}
	vel := components.Velocity{
		X: headingX * float32(cfg.Bullet.Speed),
		Y: headingY * float32(cfg.Bullet.Speed),
	}
	bullet := components.Bullet{}

	e := g.bulletMapper.NewEntity(&pos, &vel, &bullet)
	g.bulletCount++
	return e
}

// spawnInitialPopulation places the starting boids on a ring around the
// world center so they separate cleanly on the first ticks.
func (g *Game) spawnInitialPopulation() {
	cfg := g.config()
	n := cfg.Population.Initial
	if n <= 0 {
		return
	}

	cx := g.worldWidth / 2
	cy := g.worldHeight / 2
	radius := min(g.worldWidth, g.worldHeight) / 4

	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		g.spawnBoid(x, y)
	}
}
