package game

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// newRNG returns a deterministic generator for the configured seed
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// SeedGrid clears the grid and seeds it with the configured pattern
func SeedGrid(g *model.Grid, config utils.Config, rng *rand.Rand) error {
	g.Clear()

	w, h := g.Width(), g.Height()
	switch config.Pattern {
	case utils.PatternEmpty:
		return nil
	case utils.PatternBlinker:
		return errors.Wrap(g.AddBlinker(w/2-1, h/2), "[SeedGrid] blinker does not fit")
	case utils.PatternGlider:
		return errors.Wrap(g.AddGlider(0, 0), "[SeedGrid] glider does not fit")
	case utils.PatternRandom:
		// A few known shapes on top of the noise
		if w >= 10 && h >= 10 {
			g.AddGlider(5, 5)
			if w >= 20 && h >= 15 {
				g.AddGlider(w-8, 5)
			}
			g.AddBlinker(w/4, h/4)
			if w >= 30 {
				g.AddBlinker(3*w/4, 3*h/4)
			}
		}
		g.Randomize(rng, config.RandomDensity)
		return nil
	default:
		return errors.Wrapf(utils.ErrInvalidConfig, "[SeedGrid] unknown pattern %q", config.Pattern)
	}
}

// injectLife brings count random cells to life to break stagnation
func injectLife(g *model.Grid, rng *rand.Rand, count int) {
	for range count {
		g.SetAlive(rng.IntN(g.Width()), rng.IntN(g.Height()), true)
	}
}

// Resize builds a width x height grid carrying over every live cell of g
// that is still in bounds.
func Resize(g *model.Grid, width, height int) (*model.Grid, error) {
	next, err := model.NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[Resize]")
	}
	for _, p := range g.LiveCells() {
		if next.InBounds(p.X, p.Y) {
			next.SetAlive(p.X, p.Y, true)
		}
	}
	return next, nil
}
