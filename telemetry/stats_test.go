package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, p50, p90 := Summarize(samples)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	if p50 < 5 || p50 > 6 {
		t.Errorf("p50 = %v, want within [5, 6]", p50)
	}
	if p90 < 9 || p90 > 10 {
		t.Errorf("p90 = %v, want within [9, 10]", p90)
	}
}

func TestSummarizeUnsortedInput(t *testing.T) {
	mean1, p501, p901 := Summarize([]float64{3, 1, 2})
	mean2, p502, p902 := Summarize([]float64{1, 2, 3})

	if mean1 != mean2 || p501 != p502 || p901 != p902 {
		t.Error("Summarize depends on input order")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	mean, p50, p90 := Summarize(nil)
	if mean != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty input should return all zeros")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector()

	c.RecordSpawn()
	c.RecordSpawn()
	c.RecordShot(5)
	c.RecordHit()
	c.EndTick(10, 5, 0.8)
	c.EndTick(12, 3, 1.2)

	stats := c.Flush(120)

	if stats.Tick != 120 {
		t.Errorf("Tick = %v, want 120", stats.Tick)
	}
	if stats.Ticks != 2 {
		t.Errorf("Ticks = %v, want 2", stats.Ticks)
	}
	if stats.Spawned != 2 {
		t.Errorf("Spawned = %v, want 2", stats.Spawned)
	}
	if stats.Shots != 1 || stats.BulletsFired != 5 {
		t.Errorf("Shots = %v, BulletsFired = %v, want 1 and 5", stats.Shots, stats.BulletsFired)
	}
	if stats.Hits != 1 {
		t.Errorf("Hits = %v, want 1", stats.Hits)
	}
	if math.Abs(stats.BoidsMean-11) > 0.001 {
		t.Errorf("BoidsMean = %v, want 11", stats.BoidsMean)
	}
	if math.Abs(stats.SteeringMean-1.0) > 0.001 {
		t.Errorf("SteeringMean = %v, want 1.0", stats.SteeringMean)
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector()
	c.RecordSpawn()
	c.EndTick(1, 0, 0)
	c.Flush(1)

	stats := c.Flush(2)
	if stats.Spawned != 0 || stats.Ticks != 0 || stats.BoidsMean != 0 {
		t.Errorf("collector not reset: %+v", stats)
	}
}
