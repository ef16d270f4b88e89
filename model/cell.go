package model

// Cell is a single grid position. neighborCount is only meaningful between
// the scan and apply phases of a tick.
type Cell struct {
	alive         bool
	neighborCount uint8
}

// Alive reports whether the cell is alive
func (c Cell) Alive() bool {
	return c.alive
}

// NeighborCount returns the live neighbor count cached by the last scan
func (c Cell) NeighborCount() int {
	return int(c.neighborCount)
}

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}
