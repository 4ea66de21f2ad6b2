package maze

// CellWalls returns the four walls of cell (i, j).
// Sides facing the grid boundary are always blocked.
func (m *Maze) CellWalls(i, j int) (Walls, error) {
	if err := m.checkBounds(i, j); err != nil {
		return Walls{}, err
	}

	s := &m.store
	return Walls{
		South: i == m.rows-1 || s.rowWalls[i][j],
		East:  j == m.cols-1 || s.colWalls[i][j],
		North: i == 0 || s.rowWalls[i-1][j],
		West:  j == 0 || s.colWalls[i][j-1],
	}, nil
}

// SetCellWalls writes the four walls of cell (i, j). Interior sides are shared
// with the neighbouring cell and are always applied.
//
// Boundary sides cannot be opened: they are skipped, and the returned flag is
// false when the request asked to open one. The rest of the request still
// applies.
func (m *Maze) SetCellWalls(i, j int, w Walls) (bool, error) {
	if err := m.checkBounds(i, j); err != nil {
		return false, err
	}

	lastRow, lastCol := i == m.rows-1, j == m.cols-1
	firstRow, firstCol := i == 0, j == 0

	rejected := (lastRow && !w[South]) ||
		(lastCol && !w[East]) ||
		(firstRow && !w[North]) ||
		(firstCol && !w[West])

	s := &m.store
	if !lastRow {
		s.rowWalls[i][j] = w[South]
	}
	if !lastCol {
		s.colWalls[i][j] = w[East]
	}
	if !firstRow {
		s.rowWalls[i-1][j] = w[North]
	}
	if !firstCol {
		s.colWalls[i][j-1] = w[West]
	}

	return !rejected, nil
}

// IsBoundary reports whether side s of cell (i, j) faces the outside of the grid.
func (m *Maze) IsBoundary(i, j int, s Side) bool {
	switch s {
	case South:
		return i == m.rows-1
	case East:
		return j == m.cols-1
	case North:
		return i == 0
	case West:
		return j == 0
	default:
		return false
	}
}
