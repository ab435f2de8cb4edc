package game

import (
	"log/slog"

	"github.com/pthm-cable/boidhunt/telemetry"
)

// logWindowStats emits one structured log record per stats window.
func logWindowStats(g *Game, stats telemetry.WindowStats) {
	slog.Info("window_stats",
		"tick", stats.Tick,
		"stance", g.stance.String(),
		"boids_mean", stats.BoidsMean,
		"boids_p90", stats.BoidsP90,
		"bullets_mean", stats.BulletsMean,
		"spawned", stats.Spawned,
		"shots", stats.Shots,
		"bullets_fired", stats.BulletsFired,
		"hits", stats.Hits,
		"steering_mean", stats.SteeringMean,
		"steering_p90", stats.SteeringP90,
		"avoidance", g.avoidanceFactor,
	)
}

func logWriteError(err error) {
	slog.Error("failed to write telemetry", "error", err)
}
