// Package telemetry collects and reports simulation statistics.
package telemetry

// Collector accumulates per-tick counters over a stats window.
type Collector struct {
	// Event counters for the current window
	spawned      int
	shots        int
	bulletsFired int
	hits         int

	// Per-tick samples for the current window
	boidSamples     []float64
	bulletSamples   []float64
	steeringSamples []float64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordSpawn counts one spawned boid.
func (c *Collector) RecordSpawn() {
	c.spawned++
}

// RecordShot counts one shoot request and the bullets it produced.
func (c *Collector) RecordShot(bullets int) {
	c.shots++
	c.bulletsFired += bullets
}

// RecordHit counts one boid struck by a bullet.
func (c *Collector) RecordHit() {
	c.hits++
}

// EndTick records the population and mean steering magnitude for a tick.
func (c *Collector) EndTick(liveBoids, liveBullets int, meanSteering float64) {
	c.boidSamples = append(c.boidSamples, float64(liveBoids))
	c.bulletSamples = append(c.bulletSamples, float64(liveBullets))
	c.steeringSamples = append(c.steeringSamples, meanSteering)
}

// Ticks returns the number of ticks recorded in the current window.
func (c *Collector) Ticks() int {
	return len(c.boidSamples)
}

// Flush computes window statistics and resets the collector.
func (c *Collector) Flush(tick int64) WindowStats {
	boidsMean, _, boidsP90 := Summarize(c.boidSamples)
	bulletsMean, _, _ := Summarize(c.bulletSamples)
	steerMean, steerP50, steerP90 := Summarize(c.steeringSamples)

	stats := WindowStats{
		Tick:         tick,
		Ticks:        len(c.boidSamples),
		BoidsMean:    boidsMean,
		BoidsP90:     boidsP90,
		BulletsMean:  bulletsMean,
		Spawned:      c.spawned,
		Shots:        c.shots,
		BulletsFired: c.bulletsFired,
		Hits:         c.hits,
		SteeringMean: steerMean,
		SteeringP50:  steerP50,
		SteeringP90:  steerP90,
	}

	c.spawned = 0
	c.shots = 0
	c.bulletsFired = 0
	c.hits = 0
	c.boidSamples = c.boidSamples[:0]
	c.bulletSamples = c.bulletSamples[:0]
	c.steeringSamples = c.steeringSamples[:0]

	return stats
}
