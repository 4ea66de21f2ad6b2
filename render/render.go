// Package render draws mazes. It only reads dimensions and per-cell walls,
// and draws each wall segment once: the four border edges, then the South and
// East wall of every cell.
package render

import (
	"strings"

	"github.com/beka-birhanu/wallmaze/maze"
)

// Grid is the read-only view a renderer needs.
type Grid interface {
	Rows() int
	Cols() int
	CellWalls(i, j int) (maze.Walls, error)
}

// ASCII draws g with "+---+" segments.
func ASCII(g Grid) (string, error) {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.Cols()) + "\n")

	for i := 0; i < g.Rows(); i++ {
		cellRow := "|"
		wallRow := "+"
		for j := 0; j < g.Cols(); j++ {
			w, err := g.CellWalls(i, j)
			if err != nil {
				return "", err
			}

			if w.Has(maze.East) {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}

			if w.Has(maze.South) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		b.WriteString(cellRow + "\n")
		b.WriteString(wallRow + "\n")
	}

	return b.String(), nil
}
