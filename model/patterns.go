package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

var (
	// Glider travels diagonally toward +x, +y.
	Glider = []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	// Blinker is a horizontal period-2 oscillator.
	Blinker = []Point{{0, 0}, {1, 0}, {2, 0}}
)

// SeedPoints marks every point alive. Nothing is written unless all points
// are in bounds.
func (g *Grid) SeedPoints(points []Point) error {
	for _, p := range points {
		if err := g.checkBounds("Grid.SeedPoints", p.X, p.Y); err != nil {
			return err
		}
	}
	for _, p := range points {
		g.cells[p.Y][p.X].alive = true
	}
	return nil
}

// AddPattern seeds a pattern with its origin at (startX, startY)
func (g *Grid) AddPattern(pattern []Point, startX, startY int) error {
	shifted := make([]Point, len(pattern))
	for i, p := range pattern {
		shifted[i] = Point{X: startX + p.X, Y: startY + p.Y}
	}
	return errors.Wrap(g.SeedPoints(shifted), "[Grid.AddPattern]")
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) error {
	return g.AddPattern(Glider, startX, startY)
}

// AddBlinker adds a blinker oscillator pattern
func (g *Grid) AddBlinker(startX, startY int) error {
	return g.AddPattern(Blinker, startX, startY)
}

// Randomize brings cells to life with the given density. Cells already alive stay alive.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for y := range g.height {
		for x := range g.width {
			if rng.Float64() < density {
				g.cells[y][x].alive = true
			}
		}
	}
}
