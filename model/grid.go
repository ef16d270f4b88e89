package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is a fixed-size board of cells advanced one generation at a time.
// It is not safe for concurrent use; hosts that tick and seed from
// different goroutines must synchronize externally.
type Grid struct {
	width  int
	height int
	cells  [][]Cell // indexed [y][x]
}

// NewGrid creates a grid with the specified dimensions, every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] %dx%d", width, height)
	}
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) checkBounds(op string, x, y int) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d, %d) outside %dx%d", op, x, y, g.width, g.height)
	}
	return nil
}

// Clear kills every cell and zeroes every neighbor count
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = Cell{}
		}
	}
}

// SetAlive sets a cell to alive (true) or dead (false). Neighbor counts are
// left alone until the next scan.
func (g *Grid) SetAlive(x, y int, alive bool) error {
	if err := g.checkBounds("Grid.SetAlive", x, y); err != nil {
		return err
	}
	g.cells[y][x].alive = alive
	return nil
}

// IsAlive returns the state of a cell
func (g *Grid) IsAlive(x, y int) (bool, error) {
	if err := g.checkBounds("Grid.IsAlive", x, y); err != nil {
		return false, err
	}
	return g.cells[y][x].alive, nil
}

// NeighborCountAt returns the neighbor count cached by the last scan
func (g *Grid) NeighborCountAt(x, y int) (int, error) {
	if err := g.checkBounds("Grid.NeighborCountAt", x, y); err != nil {
		return 0, err
	}
	return g.cells[y][x].NeighborCount(), nil
}

// CellAt returns a copy of the cell at (x, y)
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if err := g.checkBounds("Grid.CellAt", x, y); err != nil {
		return Cell{}, err
	}
	return g.cells[y][x], nil
}

// liveNeighbors counts living neighbors inside the grid bounds
func (g *Grid) liveNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx].alive {
				count++
			}
		}
	}

	return count
}

// ComputeNeighborCounts is the scan phase: every cell's neighbor count is
// recomputed from the current liveness of the whole grid. No cell's
// liveness is modified.
func (g *Grid) ComputeNeighborCounts() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x].neighborCount = uint8(g.liveNeighbors(x, y))
		}
	}
}

// ApplyRule is the apply phase: every cell's liveness is recomputed from
// the counts left by the last scan.
func (g *Grid) ApplyRule() {
	for y := range g.height {
		for x := range g.width {
			c := &g.cells[y][x]
			c.alive = rules.Evolve(int(c.neighborCount), c.alive)
		}
	}
}

// Step advances the grid by exactly one generation
func (g *Grid) Step() {
	g.ComputeNeighborCounts()
	g.ApplyRule()
}

// LiveCells returns the coordinates of all living cells in row-major order.
// The slice is built fresh on every call.
func (g *Grid) LiveCells() []Point {
	var live []Point
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				live = append(live, Point{X: x, Y: y})
			}
		}
	}
	return live
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				count++
			}
		}
	}
	return
}

// Snapshot returns a copy of the liveness of every cell, indexed [y][x]
func (g *Grid) Snapshot() [][]bool {
	snap := make([][]bool, g.height)
	for y := range g.height {
		snap[y] = make([]bool, g.width)
		for x := range g.width {
			snap[y][x] = g.cells[y][x].alive
		}
	}
	return snap
}

// Hash returns an MD5 hash of the current liveness of the grid
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
