package systems

import (
	"testing"

	"github.com/pthm-cable/boidhunt/components"
)

func TestAvoidPairScenario(t *testing.T) {
	tw := newTestWorld()
	a := tw.spawnBoid(0, 0, 0, 0, components.BehaviorAvoid)
	b := tw.spawnBoid(10, 0, 0, 0, components.BehaviorAvoid)

	NewAvoidSystem(tw.world).Update(100)

	// Squared distance 100, factor 100: unit repulsion away from the pair
	sa := tw.steerMap.Get(a)
	sb := tw.steerMap.Get(b)
	if !approxEq(sa.X, -1, eps) || !approxEq(sa.Y, 0, eps) {
		t.Errorf("steering A = (%v, %v), want (-1, 0)", sa.X, sa.Y)
	}
	if !approxEq(sb.X, 1, eps) || !approxEq(sb.Y, 0, eps) {
		t.Errorf("steering B = (%v, %v), want (1, 0)", sb.X, sb.Y)
	}
}

func TestAvoidForcesAreExactNegations(t *testing.T) {
	tw := newTestWorld()
	a := tw.spawnBoid(3, -7, 0, 0, components.BehaviorAvoid)
	b := tw.spawnBoid(-12, 5, 0, 0, components.BehaviorAvoid)

	NewAvoidSystem(tw.world).Update(250)

	sa := tw.steerMap.Get(a)
	sb := tw.steerMap.Get(b)
	if sa.X != -sb.X || sa.Y != -sb.Y {
		t.Errorf("forces not symmetric: A=(%v, %v), B=(%v, %v)", sa.X, sa.Y, sb.X, sb.Y)
	}
}

func TestAvoidScalesWithFactor(t *testing.T) {
	tw := newTestWorld()
	a := tw.spawnBoid(0, 0, 0, 0, components.BehaviorAvoid)
	tw.spawnBoid(10, 0, 0, 0, components.BehaviorAvoid)

	NewAvoidSystem(tw.world).Update(200)

	sa := tw.steerMap.Get(a)
	if !approxEq(sa.X, -2, eps) {
		t.Errorf("steering.X = %v with factor 200, want -2", sa.X)
	}
}

func TestAvoidCoincidentBoidsNoNaN(t *testing.T) {
	tw := newTestWorld()
	a := tw.spawnBoid(5, 5, 0, 0, components.BehaviorAvoid)
	b := tw.spawnBoid(5, 5, 0, 0, components.BehaviorAvoid)

	NewAvoidSystem(tw.world).Update(100)

	sa := tw.steerMap.Get(a)
	sb := tw.steerMap.Get(b)
	if sa.X != 0 || sa.Y != 0 || sb.X != 0 || sb.Y != 0 {
		t.Errorf("coincident boids received force: A=(%v, %v), B=(%v, %v)", sa.X, sa.Y, sb.X, sb.Y)
	}
}

func TestAvoidIgnoresUntaggedBoids(t *testing.T) {
	tw := newTestWorld()
	a := tw.spawnBoid(0, 0, 0, 0, components.BehaviorAvoid)
	b := tw.spawnBoid(10, 0, 0, 0, components.BehaviorSeek) // no Avoid

	NewAvoidSystem(tw.world).Update(100)

	sa := tw.steerMap.Get(a)
	sb := tw.steerMap.Get(b)
	if sa.X != 0 || sa.Y != 0 {
		t.Errorf("tagged boid repelled by untagged one: (%v, %v)", sa.X, sa.Y)
	}
	if sb.X != 0 || sb.Y != 0 {
		t.Errorf("untagged boid received force: (%v, %v)", sb.X, sb.Y)
	}
}

func TestAvoidThreeBoidsSumToZero(t *testing.T) {
	// Internal forces only: the net force over the whole flock is zero.
	tw := newTestWorld()
	a := tw.spawnBoid(0, 0, 0, 0, components.BehaviorAvoid)
	b := tw.spawnBoid(20, 0, 0, 0, components.BehaviorAvoid)
	c := tw.spawnBoid(10, 15, 0, 0, components.BehaviorAvoid)

	NewAvoidSystem(tw.world).Update(500)

	sa := tw.steerMap.Get(a)
	sb := tw.steerMap.Get(b)
	sc := tw.steerMap.Get(c)
	sumX := sa.X + sb.X + sc.X
	sumY := sa.Y + sb.Y + sc.Y
	if !approxEq(sumX, 0, eps) || !approxEq(sumY, 0, eps) {
		t.Errorf("net avoidance force = (%v, %v), want (0, 0)", sumX, sumY)
	}
}
