package model

import "github.com/pkg/errors"

// compass lists the eight neighbor offsets: NW, N, NE, W, E, SW, S, SE.
var compass = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountLiveNeighbors counts the live neighbors of (x, y) in a liveness
// snapshot indexed [y][x]. Positions that fall outside the snapshot never
// contribute.
func CountLiveNeighbors(cells [][]bool, x, y int) (int, error) {
	if !inSnapshot(cells, x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[CountLiveNeighbors] (%d, %d)", x, y)
	}
	count := 0
	for _, d := range compass {
		nx, ny := x+d.X, y+d.Y
		if inSnapshot(cells, nx, ny) && cells[ny][nx] {
			count++
		}
	}
	return count, nil
}

func inSnapshot(cells [][]bool, x, y int) bool {
	return y >= 0 && y < len(cells) && x >= 0 && x < len(cells[y])
}
