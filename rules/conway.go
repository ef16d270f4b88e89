package rules

// MaxNeighbors is the largest neighbor count a cell can have on a square grid.
const MaxNeighbors = 8

type outcome uint8

const (
	dies outcome = iota
	lives
	keeps
)

// conwayTable maps every possible neighbor count to what happens to the cell.
var conwayTable = [MaxNeighbors + 1]outcome{
	0: dies,
	1: dies,
	2: keeps,
	3: lives,
	4: dies,
	5: dies,
	6: dies,
	7: dies,
	8: dies,
}

/*
Evolve returns the next state of a cell given its live neighbor count and
current state.

Conway's Game of Life rules: birth on 3, survival on 2 or 3, death otherwise.
Counts outside [0, MaxNeighbors] are treated as dead.
*/
func Evolve(neighbors int, current bool) bool {
	if neighbors < 0 || neighbors > MaxNeighbors {
		return false
	}
	switch conwayTable[neighbors] {
	case lives:
		return true
	case keeps:
		return current
	default:
		return false
	}
}
