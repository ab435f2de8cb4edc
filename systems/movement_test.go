package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/boidhunt/components"
)

func TestMovementIntegratesSteering(t *testing.T) {
	tw := newTestWorld()
	e := tw.spawnBoid(0, 0, 0, 0, components.DefaultBehaviors)

	steer := tw.steerMap.Get(e)
	steer.X, steer.Y = 1, 0

	NewMovementSystem(tw.world).Update(0.75, 250)

	vel := tw.velMap.Get(e)
	if !approxEq(vel.X, 187.5, eps) || !approxEq(vel.Y, 0, eps) {
		t.Errorf("velocity = (%v, %v), want (187.5, 0)", vel.X, vel.Y)
	}
}

func TestMovementClampsSpeed(t *testing.T) {
	tests := []struct {
		name           string
		steerX, steerY float32
	}{
		{"huge axis-aligned", 1e6, 0},
		{"huge diagonal", 4000, -3000},
		{"moderate", 2, 2},
	}

	const maxSpeed = 250

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld()
			e := tw.spawnBoid(0, 0, 0, 0, components.DefaultBehaviors)

			steer := tw.steerMap.Get(e)
			steer.X, steer.Y = tt.steerX, tt.steerY

			NewMovementSystem(tw.world).Update(0.75, maxSpeed)

			vel := tw.velMap.Get(e)
			speed := length(vel.X, vel.Y)
			if speed > maxSpeed+eps {
				t.Errorf("speed = %v exceeds max %v", speed, float32(maxSpeed))
			}

			// Magnitude clamp preserves direction
			wantNX, wantNY := normalizeSafe(tt.steerX, tt.steerY)
			gotNX, gotNY := normalizeSafe(vel.X, vel.Y)
			if !approxEq(gotNX, wantNX, eps) || !approxEq(gotNY, wantNY, eps) {
				t.Errorf("direction = (%v, %v), want (%v, %v)", gotNX, gotNY, wantNX, wantNY)
			}
		})
	}
}

func TestMovementDerivesFacing(t *testing.T) {
	tests := []struct {
		name           string
		steerX, steerY float32
		wantAngle      float32
	}{
		{"up", 0, 1, 0},
		{"right", 1, 0, -math.Pi / 2},
		{"left", -1, 0, math.Pi / 2},
		{"down", 0, -1, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld()
			e := tw.spawnBoid(0, 0, 0, 0, components.DefaultBehaviors)

			steer := tw.steerMap.Get(e)
			steer.X, steer.Y = tt.steerX, tt.steerY

			NewMovementSystem(tw.world).Update(0.75, 250)

			rot := tw.rotMap.Get(e)
			// down can come out as +pi or -pi
			diff := math.Abs(float64(rot.Angle - tt.wantAngle))
			if diff > 1e-4 && math.Abs(diff-2*math.Pi) > 1e-4 {
				t.Errorf("angle = %v, want %v", rot.Angle, tt.wantAngle)
			}
		})
	}
}

func TestMovementKeepsFacingWhenStopped(t *testing.T) {
	tw := newTestWorld()
	e := tw.spawnBoid(0, 0, 0, 0, components.DefaultBehaviors)

	rot := tw.rotMap.Get(e)
	rot.Angle = 1.25

	NewMovementSystem(tw.world).Update(0.75, 250)

	if rot.Angle != 1.25 {
		t.Errorf("angle = %v changed with zero velocity, want 1.25", rot.Angle)
	}
}

func TestMovementResetsAccumulator(t *testing.T) {
	tw := newTestWorld()
	e := tw.spawnBoid(0, 0, 0, 0, components.DefaultBehaviors)

	steer := tw.steerMap.Get(e)
	steer.X, steer.Y = 3, -4

	NewMovementSystem(tw.world).Update(0.75, 250)

	if steer.X != 0 || steer.Y != 0 {
		t.Errorf("accumulator = (%v, %v) after integration, want (0, 0)", steer.X, steer.Y)
	}
}

func TestPhysicsAdvancesPositions(t *testing.T) {
	tw := newTestWorld()
	e := tw.spawnBoid(10, 20, 30, -60, components.DefaultBehaviors)

	phys := NewPhysicsSystem(tw.world, Bounds{Width: 800, Height: 600})
	phys.Update(0.5)

	pos := tw.posMap.Get(e)
	if !approxEq(pos.X, 25, eps) || !approxEq(pos.Y, -10, eps) {
		t.Errorf("position = (%v, %v), want (25, -10)", pos.X, pos.Y)
	}
}

func TestPhysicsInBounds(t *testing.T) {
	phys := NewPhysicsSystem(newTestWorld().world, Bounds{Width: 800, Height: 600})

	tests := []struct {
		name   string
		x, y   float32
		margin float32
		want   bool
	}{
		{"center", 400, 300, 0, true},
		{"edge", 800, 600, 0, true},
		{"outside", 900, 300, 0, false},
		{"outside within margin", 850, 300, 100, true},
		{"negative outside", -50, 300, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := phys.InBounds(tt.x, tt.y, tt.margin); got != tt.want {
				t.Errorf("InBounds(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.margin, got, tt.want)
			}
		})
	}
}
