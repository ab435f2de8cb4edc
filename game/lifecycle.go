package game

import "log/slog"

// Unload flushes any partial stats window and releases resources.
func (g *Game) Unload() {
	if g.collector.Ticks() > 0 {
		g.flushStats()
	}

	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
