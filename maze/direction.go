package maze

// Delta returns the row and column step taken when crossing side s.
func (s Side) Delta() (dRow, dCol int) {
	switch s {
	case South:
		return 1, 0
	case East:
		return 0, 1
	case North:
		return -1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the side facing s across a shared wall.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Neighbor returns the cell across side s of (i, j). ok is false when that
// side is on the boundary or (i, j) is out of range.
func (m *Maze) Neighbor(i, j int, s Side) (ni, nj int, ok bool) {
	if !m.InBounds(i, j) {
		return 0, 0, false
	}
	di, dj := s.Delta()
	ni, nj = i+di, j+dj
	if (di == 0 && dj == 0) || !m.InBounds(ni, nj) {
		return 0, 0, false
	}
	return ni, nj, true
}

// SetWall sets one side of cell (i, j), leaving the other three as they are.
// Like SetCellWalls it returns false when asked to open a boundary side.
func (m *Maze) SetWall(i, j int, s Side, blocked bool) (bool, error) {
	w, err := m.CellWalls(i, j)
	if err != nil {
		return false, err
	}
	return m.SetCellWalls(i, j, w.With(s, blocked))
}
