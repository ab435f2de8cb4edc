package systems

import "math"

// length returns the magnitude of a vector.
func length(x, y float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y)))
}

// distSq returns the squared distance between two points.
func distSq(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// normalizeSafe returns the unit vector for (x, y), or (0, 0) for a
// zero-length input. Steering math must never produce NaN.
func normalizeSafe(x, y float32) (float32, float32) {
	mag := length(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// limit caps the magnitude of a vector, preserving direction.
func limit(x, y, maxMag float32) (float32, float32) {
	mag := length(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// rotate rotates a vector by the given angle in radians.
func rotate(x, y, angle float32) (float32, float32) {
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))
	return x*cos - y*sin, x*sin + y*cos
}
