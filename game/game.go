// Package game wires the simulation world, systems and input together.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/boidhunt/camera"
	"github.com/pthm-cable/boidhunt/components"
	"github.com/pthm-cable/boidhunt/config"
	"github.com/pthm-cable/boidhunt/systems"
	"github.com/pthm-cable/boidhunt/telemetry"
	"github.com/pthm-cable/boidhunt/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete game state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Entity mappers
	boidMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Steering,
		components.Boid,
	]
	bulletMapper *ecs.Map3[
		components.Position,
		components.Velocity,
		components.Bullet,
	]

	// Filters for iteration outside the systems
	shootFilter  ecs.Filter3[components.Position, components.Velocity, components.Boid]
	steerFilter  ecs.Filter2[components.Steering, components.Boid]
	boidFilter   ecs.Filter3[components.Position, components.Rotation, components.Boid]
	bulletFilter ecs.Filter2[components.Position, components.Bullet]

	// Individual component mappers for lookups
	posMap    *ecs.Map1[components.Position]
	boidMap   *ecs.Map1[components.Boid]
	bulletMap *ecs.Map1[components.Bullet]

	// Systems
	seek      *systems.SeekSystem
	flee      *systems.FleeSystem
	wander    *systems.WanderSystem
	avoid     *systems.AvoidSystem
	movement  *systems.MovementSystem
	physics   *systems.PhysicsSystem
	stanceSys *systems.StanceSystem
	collision *systems.CollisionSystem

	// Pending one-shot signals, drained every tick
	signals Signals

	// Scratch buffer for collision pairs
	pairs []systems.CollisionPair

	// Shared simulation context; each value has a single writer per tick
	targetX, targetY float32
	stance           systems.Stance
	avoidanceFactor  float32

	// Rendering and telemetry
	camera    *camera.Camera
	hud       *ui.HUD
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	// State
	tick             int64
	paused           bool
	logStats         bool
	stepsPerUpdate   int
	statsWindowTicks int64
	boidCount        int
	bulletCount      int

	// Window dimensions
	screenWidth, screenHeight float32
	worldWidth, worldHeight   float32
}

// NewGameWithOptions creates a new game instance.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),

		boidMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Steering,
			components.Boid,
		](world),
		bulletMapper: ecs.NewMap3[
			components.Position,
			components.Velocity,
			components.Bullet,
		](world),

		shootFilter:  *ecs.NewFilter3[components.Position, components.Velocity, components.Boid](world),
		steerFilter:  *ecs.NewFilter2[components.Steering, components.Boid](world),
		boidFilter:   *ecs.NewFilter3[components.Position, components.Rotation, components.Boid](world),
		bulletFilter: *ecs.NewFilter2[components.Position, components.Bullet](world),

		posMap:    ecs.NewMap1[components.Position](world),
		boidMap:   ecs.NewMap1[components.Boid](world),
		bulletMap: ecs.NewMap1[components.Bullet](world),

		stance:          systems.StanceFollow,
		avoidanceFactor: float32(cfg.Boid.AvoidanceFactor),

		collector: telemetry.NewCollector(),

		logStats:       opts.LogStats,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),

		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
		worldWidth:   cfg.Derived.WorldW32,
		worldHeight:  cfg.Derived.WorldH32,
	}

	bounds := systems.Bounds{Width: g.worldWidth, Height: g.worldHeight}
	grid := systems.NewSpatialGrid(g.worldWidth, g.worldHeight, float32(cfg.Physics.GridCellSize))

	g.seek = systems.NewSeekSystem(world)
	g.flee = systems.NewFleeSystem(world)
	g.wander = systems.NewWanderSystem(world, g.rng)
	g.avoid = systems.NewAvoidSystem(world)
	g.movement = systems.NewMovementSystem(world)
	g.physics = systems.NewPhysicsSystem(world, bounds)
	g.stanceSys = systems.NewStanceSystem(world)
	g.collision = systems.NewCollisionSystem(world, grid)

	// Stats window in ticks
	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}
	g.statsWindowTicks = int64(windowSec / cfg.Physics.DT)
	if g.statsWindowTicks < 1 {
		g.statsWindowTicks = 1
	}

	if !opts.Headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight, g.worldWidth, g.worldHeight)
		g.hud = ui.NewHUD()
	}

	// Target starts at the world center so seek has somewhere to go
	// before the first pointer update.
	g.targetX = g.worldWidth / 2
	g.targetY = g.worldHeight / 2

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		panic(err)
	}
	g.output = om
	if err := g.output.WriteConfig(cfg); err != nil {
		panic(err)
	}

	g.spawnInitialPopulation()

	return g
}

// config returns the active configuration.
func (g *Game) config() *config.Config {
	return config.Cfg()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.tick
}

// Stance returns the current stance.
func (g *Game) Stance() systems.Stance {
	return g.stance
}

// AvoidanceFactor returns the current inter-agent repulsion gain.
func (g *Game) AvoidanceFactor() float32 {
	return g.avoidanceFactor
}

// BoidCount returns the number of live boids.
func (g *Game) BoidCount() int {
	return g.boidCount
}

// BulletCount returns the number of live bullets.
func (g *Game) BulletCount() int {
	return g.bulletCount
}

// Update advances the game by one frame in graphical mode.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances the simulation without any raylib calls.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}
