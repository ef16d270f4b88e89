package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func TestSeedPointsIsAllOrNothing(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	err := g.SeedPoints([]Point{{0, 0}, {1, 1}, {4, 4}})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if g.Population() != 0 {
		t.Fatalf("partial seed wrote %d cells", g.Population())
	}
}

func TestAddBlinker(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	if err := g.AddBlinker(1, 2); err != nil {
		t.Fatal(err)
	}
	assertLive(t, g, []Point{{1, 2}, {2, 2}, {3, 2}})
}

func TestAddGliderOutOfBounds(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	if err := g.AddGlider(3, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a := newTestGrid(t, 20, 20)
	b := newTestGrid(t, 20, 20)
	a.Randomize(rand.New(rand.NewPCG(7, 0)), 0.3)
	b.Randomize(rand.New(rand.NewPCG(7, 0)), 0.3)
	if a.Hash() != b.Hash() {
		t.Fatal("same seed produced different grids")
	}
	if a.Population() == 0 {
		t.Fatal("density 0.3 produced an empty grid")
	}
}

func TestRandomizeDensityBounds(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	g.Randomize(rand.New(rand.NewPCG(1, 0)), 0)
	if g.Population() != 0 {
		t.Fatalf("density 0 produced %d cells", g.Population())
	}
	g.Randomize(rand.New(rand.NewPCG(1, 0)), 1)
	if g.Population() != 100 {
		t.Fatalf("density 1 produced %d cells", g.Population())
	}
}
