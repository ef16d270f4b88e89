package game

const historySize = 5

// history remembers the hashes of recent generations for cycle detection
type history struct {
	hashes []string
}

// stagnant reports whether hash repeats one of the last three generations,
// which catches still lifes and oscillators up to period 3.
func (h *history) stagnant(hash string) bool {
	n := len(h.hashes)
	for i := 1; i <= 3 && i <= n; i++ {
		if h.hashes[n-i] == hash {
			return true
		}
	}
	return false
}

func (h *history) add(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

func (h *history) reset() {
	h.hashes = nil
}
