package systems

import (
	"github.com/mlange-42/ark/ecs"
)

// gridEntry holds an entity with its position and collision radius,
// captured at insert time so overlap tests need no component lookups.
type gridEntry struct {
	E      ecs.Entity
	X, Y   float32
	Radius float32
}

// SpatialGrid provides cheap neighborhood lookups using a cell-based grid.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	width    float32
	height   float32
	cells    [][]gridEntry
}

// NewSpatialGrid creates a spatial grid covering the given world size.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]gridEntry, cols*rows)
	for i := range cells {
		cells[i] = make([]gridEntry, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		width:    width,
		height:   height,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity with its collision radius at the given position.
// Positions outside the grid are clamped into the border cells.
func (g *SpatialGrid) Insert(e ecs.Entity, x, y, radius float32) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], gridEntry{E: e, X: x, Y: y, Radius: radius})
}

// cellIndex returns the flat cell index for a position, clamped to the grid.
func (g *SpatialGrid) cellIndex(x, y float32) int {
	col := clampInt(int(x/g.cellSize), 0, g.cols-1)
	row := clampInt(int(y/g.cellSize), 0, g.rows-1)
	return row*g.cols + col
}

// MaxQueryResults caps the number of entries returned by overlap queries.
const MaxQueryResults = 128

// QueryCircleInto finds entries whose circles overlap the query circle
// and appends them to dst (up to MaxQueryResults). The excluded entity
// is skipped. Reuse dst across calls to avoid allocations.
func (g *SpatialGrid) QueryCircleInto(dst []gridEntry, x, y, radius float32, exclude ecs.Entity) []gridEntry {
	// Entries larger than one cell could be missed; the extra cell of
	// slack covers the radii used here (boid and bullet sizes).
	cellRadius := int(radius/g.cellSize) + 2

	centerCol := clampInt(int(x/g.cellSize), 0, g.cols-1)
	centerRow := clampInt(int(y/g.cellSize), 0, g.rows-1)

	for dc := -cellRadius; dc <= cellRadius; dc++ {
		col := centerCol + dc
		if col < 0 || col >= g.cols {
			continue
		}
		for dr := -cellRadius; dr <= cellRadius; dr++ {
			row := centerRow + dr
			if row < 0 || row >= g.rows {
				continue
			}

			for _, entry := range g.cells[row*g.cols+col] {
				if entry.E == exclude {
					continue
				}
				reach := radius + entry.Radius
				if distSq(x, y, entry.X, entry.Y) <= reach*reach {
					dst = append(dst, entry)
					if len(dst) >= MaxQueryResults {
						return dst
					}
				}
			}
		}
	}

	return dst
}

func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
