/*
Package maze models a rectangular grid maze as the set of walls shared between
adjacent cells.

Only interior walls are stored: one grid for the walls between vertically
adjacent cells and one for the walls between horizontally adjacent cells. The
outer boundary is never stored and always reads as blocked, so a maze stays
enclosed whatever a caller writes.

A cell's four walls are derived on read (CellWalls) and split back into the
shared store on write (SetCellWalls). FillWith sweeps every cell with a
caller-supplied rule; Fill, Clear and Randomize are built on it, as are the
generators in the generator package.

A Maze is not safe for concurrent use.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for a coordinate outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrInvalidDimensions is returned when rows or cols is below one.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Maze is an m x n grid of cells separated by walls.
type Maze struct {
	rows  int
	cols  int
	store wallStore
}

// New creates a rows x cols maze with every interior wall open.
func New(rows, cols int) (*Maze, error) {
	return NewWithWalls(rows, cols, false)
}

// NewWithWalls creates a rows x cols maze with every interior wall set to blocked.
func NewWithWalls(rows, cols int, blocked bool) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	return &Maze{
		rows:  rows,
		cols:  cols,
		store: newWallStore(rows, cols, blocked),
	}, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Maze) Cols() int {
	return m.cols
}

// InBounds reports whether (i, j) is a cell of the maze.
func (m *Maze) InBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < m.rows && j < m.cols
}

func (m *Maze) checkBounds(i, j int) error {
	if !m.InBounds(i, j) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d maze", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	return nil
}
