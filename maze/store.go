package maze

// wallStore keeps interior walls only. Boundary walls have no slot.
//
// rowWalls[i][j] separates (i,j) from (i+1,j); shape (rows-1) x cols.
// colWalls[i][j] separates (i,j) from (i,j+1); shape rows x (cols-1).
type wallStore struct {
	rowWalls [][]bool
	colWalls [][]bool
}

func newWallStore(rows, cols int, blocked bool) wallStore {
	return wallStore{
		rowWalls: newGrid(rows-1, cols, blocked),
		colWalls: newGrid(rows, cols-1, blocked),
	}
}

// newGrid allocates an h x w grid backed by a single slice.
func newGrid(h, w int, value bool) [][]bool {
	if h <= 0 || w <= 0 {
		return [][]bool{}
	}

	cells := make([]bool, h*w)
	if value {
		for k := range cells {
			cells[k] = true
		}
	}

	grid := make([][]bool, h)
	for i := range grid {
		grid[i] = cells[i*w : (i+1)*w : (i+1)*w]
	}
	return grid
}

func copyGrid(src [][]bool) [][]bool {
	dst := make([][]bool, len(src))
	for i := range src {
		dst[i] = append([]bool(nil), src[i]...)
	}
	return dst
}
