package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats summarizes one stats window for CSV output and logging.
type WindowStats struct {
	RunID        string  `csv:"run_id"`
	Tick         int64   `csv:"tick"`
	Ticks        int     `csv:"ticks"`
	BoidsMean    float64 `csv:"boids_mean"`
	BoidsP90     float64 `csv:"boids_p90"`
	BulletsMean  float64 `csv:"bullets_mean"`
	Spawned      int     `csv:"spawned"`
	Shots        int     `csv:"shots"`
	BulletsFired int     `csv:"bullets_fired"`
	Hits         int     `csv:"hits"`
	SteeringMean float64 `csv:"steering_mean"`
	SteeringP50  float64 `csv:"steering_p50"`
	SteeringP90  float64 `csv:"steering_p90"`
}

// Summarize returns the mean, median and 90th percentile of samples.
// Returns zeros for an empty slice.
func Summarize(samples []float64) (mean, p50, p90 float64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, p50, p90
}
