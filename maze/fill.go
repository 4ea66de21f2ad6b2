package maze

import (
	"math/rand"
	"time"
)

// Rule returns the South and East walls for cell (i, j).
type Rule func(i, j int) (south, east bool)

// FillWith visits every cell in row-major order and sets its South and East
// walls from rule. North and West are left as they are: they belong to the
// South and East of the neighbours covered by the same sweep.
func (m *Maze) FillWith(rule Rule) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			south, east := rule(i, j)
			w, _ := m.CellWalls(i, j)
			w[South] = south
			w[East] = east
			_, _ = m.SetCellWalls(i, j, w)
		}
	}
}

// Fill blocks every wall.
func (m *Maze) Fill() {
	m.FillWith(func(int, int) (bool, bool) { return true, true })
}

// Clear opens every interior wall.
func (m *Maze) Clear() {
	m.FillWith(func(int, int) (bool, bool) { return false, false })
}

// Randomize sets every interior wall to a coin flip drawn from rng.
// A nil rng uses a time-seeded source.
func (m *Maze) Randomize(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m.FillWith(func(int, int) (bool, bool) {
		return rng.Intn(2) == 1, rng.Intn(2) == 1
	})
}
