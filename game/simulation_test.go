package game

import (
	"math"
	"sort"
	"testing"

	"github.com/pthm-cable/boidhunt/config"
	"github.com/pthm-cable/boidhunt/systems"
)

// newHeadlessGame builds a game with a fresh default config and the
// given starting population.
func newHeadlessGame(t *testing.T, initial int) *Game {
	t.Helper()
	config.MustInit("")
	config.Cfg().Population.Initial = initial
	return NewGameWithOptions(Options{
		Seed:           42,
		Headless:       true,
		StepsPerUpdate: 1,
	})
}

func TestSpawnRequestCreatesBoid(t *testing.T) {
	g := newHeadlessGame(t, 0)

	g.RequestSpawn(5, 5)
	g.UpdateHeadless()

	if g.BoidCount() != 1 {
		t.Fatalf("BoidCount = %d, want 1", g.BoidCount())
	}
}

func TestSpawnRespectsPopulationCap(t *testing.T) {
	g := newHeadlessGame(t, 0)
	config.Cfg().Population.Max = 2

	for i := 0; i < 5; i++ {
		g.RequestSpawn(float32(i)*20, 50)
	}
	g.UpdateHeadless()

	if g.BoidCount() != 2 {
		t.Errorf("BoidCount = %d, want cap of 2", g.BoidCount())
	}
}

func TestStanceToggleRoundTrip(t *testing.T) {
	g := newHeadlessGame(t, 3)

	if g.Stance() != systems.StanceFollow {
		t.Fatalf("initial stance = %v, want follow", g.Stance())
	}

	g.RequestStanceToggle()
	g.UpdateHeadless()
	if g.Stance() != systems.StanceEvade {
		t.Errorf("stance after toggle = %v, want evade", g.Stance())
	}

	g.RequestStanceToggle()
	g.UpdateHeadless()
	if g.Stance() != systems.StanceFollow {
		t.Errorf("stance after second toggle = %v, want follow", g.Stance())
	}
}

func TestStanceDoubleToggleCancels(t *testing.T) {
	g := newHeadlessGame(t, 1)

	g.RequestStanceToggle()
	g.RequestStanceToggle()
	g.UpdateHeadless()

	if g.Stance() != systems.StanceFollow {
		t.Errorf("stance = %v, want follow after paired toggles", g.Stance())
	}
}

func TestAvoidanceAdjustClamps(t *testing.T) {
	g := newHeadlessGame(t, 0)
	maxAvoid := float32(config.Cfg().Boid.MaxAvoidance)

	g.AdjustAvoidance(maxAvoid * 10)
	g.UpdateHeadless()
	if g.AvoidanceFactor() != maxAvoid {
		t.Errorf("AvoidanceFactor = %v, want clamp at %v", g.AvoidanceFactor(), maxAvoid)
	}

	g.AdjustAvoidance(-maxAvoid * 10)
	g.UpdateHeadless()
	if g.AvoidanceFactor() != 0 {
		t.Errorf("AvoidanceFactor = %v, want clamp at 0", g.AvoidanceFactor())
	}
}

func TestAvoidanceClampsPerEvent(t *testing.T) {
	g := newHeadlessGame(t, 0)
	maxAvoid := float32(config.Cfg().Boid.MaxAvoidance)

	// Two opposing deltas in the same tick: the first saturates the gain
	// at the cap, so the second pulls it down from there rather than
	// cancelling against the raw sum.
	g.AdjustAvoidance(maxAvoid * 10)
	g.AdjustAvoidance(-maxAvoid * 10)
	g.UpdateHeadless()

	if g.AvoidanceFactor() != 0 {
		t.Errorf("AvoidanceFactor = %v, want 0 after saturate-then-drop", g.AvoidanceFactor())
	}
}

func TestShootSkipsStationaryBoids(t *testing.T) {
	g := newHeadlessGame(t, 0)

	// Spawn and shoot in the same tick: the new boid has not moved yet
	// when the volley fires.
	g.RequestSpawn(100, 100)
	g.RequestShoot()
	g.UpdateHeadless()

	if g.BulletCount() != 0 {
		t.Errorf("BulletCount = %d, want 0 for a stationary shooter", g.BulletCount())
	}
}

func TestShootFiresOneBulletPerMovingBoid(t *testing.T) {
	g := newHeadlessGame(t, 4)

	// A few ticks give every boid a velocity.
	for i := 0; i < 5; i++ {
		g.UpdateHeadless()
	}

	g.RequestShoot()
	g.UpdateHeadless()

	if g.BulletCount() != 4 {
		t.Errorf("BulletCount = %d, want one bullet per boid", g.BulletCount())
	}
}

func TestBulletHitRemovesBoidAndBullet(t *testing.T) {
	g := newHeadlessGame(t, 0)

	// Place a stationary bullet directly on a boid.
	boid := g.spawnBoid(200, 200)
	bullet := g.spawnBullet(200, 200, 0, 0)

	g.UpdateHeadless()

	if g.BoidCount() != 0 {
		t.Errorf("BoidCount = %d, want 0 after hit", g.BoidCount())
	}
	if g.BulletCount() != 0 {
		t.Errorf("BulletCount = %d, want 0 after hit", g.BulletCount())
	}

	// The entities themselves must be gone from the world, not just
	// stripped of components.
	if g.world.Alive(boid) {
		t.Error("shot boid entity still alive")
	}
	if g.world.Alive(bullet) {
		t.Error("spent bullet entity still alive")
	}
}

func TestBulletCulledOutOfBounds(t *testing.T) {
	g := newHeadlessGame(t, 0)

	bullet := g.spawnBullet(-2000, -2000, 0, 0)
	g.UpdateHeadless()

	if g.BulletCount() != 0 {
		t.Errorf("BulletCount = %d, want 0 after culling", g.BulletCount())
	}
	if g.world.Alive(bullet) {
		t.Error("culled bullet entity still alive")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []float64 {
		g := newHeadlessGame(t, 8)
		for i := 0; i < 50; i++ {
			g.UpdateHeadless()
		}

		var coords []float64
		query := g.boidFilter.Query()
		for query.Next() {
			pos, _, _ := query.Get()
			coords = append(coords, float64(pos.X), float64(pos.Y))
		}
		sort.Float64s(coords)
		return coords
	}

	a := run()
	b := run()

	if len(a) != len(b) {
		t.Fatalf("boid counts differ: %d vs %d", len(a)/2, len(b)/2)
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-6 {
			t.Fatalf("runs diverged at coord %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBoidsMoveTowardTarget(t *testing.T) {
	g := newHeadlessGame(t, 0)
	g.RequestSpawn(100, 100)
	g.UpdateHeadless()

	g.SetTarget(700, 500)
	startDist := math.Hypot(700-100, 500-100)

	for i := 0; i < 60; i++ {
		g.UpdateHeadless()
	}

	query := g.boidFilter.Query()
	if !query.Next() {
		t.Fatal("boid disappeared")
	}
	pos, _, _ := query.Get()
	query.Close()

	endDist := math.Hypot(float64(700-pos.X), float64(500-pos.Y))
	if endDist >= startDist {
		t.Errorf("boid did not close in on target: %v -> %v", startDist, endDist)
	}
}
