package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidSnapshot is returned when a snapshot's wall grids do not match its dimensions.
var ErrInvalidSnapshot = errors.New("invalid maze snapshot")

// Snapshot is a detached copy of a maze's stored walls.
type Snapshot struct {
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	RowWalls [][]bool `json:"row_walls"`
	ColWalls [][]bool `json:"col_walls"`
}

// Snapshot copies the maze's interior walls.
func (m *Maze) Snapshot() Snapshot {
	return Snapshot{
		Rows:     m.rows,
		Cols:     m.cols,
		RowWalls: copyGrid(m.store.rowWalls),
		ColWalls: copyGrid(m.store.colWalls),
	}
}

// FromSnapshot rebuilds a maze from s. The snapshot is copied.
func FromSnapshot(s Snapshot) (*Maze, error) {
	m, err := New(s.Rows, s.Cols)
	if err != nil {
		return nil, err
	}

	if err := copyInto(m.store.rowWalls, s.RowWalls); err != nil {
		return nil, fmt.Errorf("%w: row walls: %v", ErrInvalidSnapshot, err)
	}
	if err := copyInto(m.store.colWalls, s.ColWalls); err != nil {
		return nil, fmt.Errorf("%w: col walls: %v", ErrInvalidSnapshot, err)
	}
	return m, nil
}

func copyInto(dst, src [][]bool) error {
	if len(src) != len(dst) {
		return fmt.Errorf("want %d rows, got %d", len(dst), len(src))
	}
	for i := range dst {
		if len(src[i]) != len(dst[i]) {
			return fmt.Errorf("row %d: want %d entries, got %d", i, len(dst[i]), len(src[i]))
		}
		copy(dst[i], src[i])
	}
	return nil
}
