package i

import (
	"context"
	"io"

	"github.com/beka-birhanu/wallmaze/maze"
	"github.com/beka-birhanu/wallmaze/render"
	"github.com/google/uuid"
)

// MazeService serves a single maze.
type MazeService interface {
	// Dimensions returns rows, cols and the current revision.
	Dimensions() (int, int, uuid.UUID)

	// Cell returns the walls of cell (row, col).
	Cell(row, col int) (maze.Walls, error)

	// SetCell writes the walls of cell (row, col) and returns the walls as
	// stored by this write. The bool is false when a boundary wall was asked
	// to open.
	SetCell(ctx context.Context, row, col int, w maze.Walls) (maze.Walls, bool, error)

	Fill(ctx context.Context) error
	Clear(ctx context.Context) error

	// Randomize re-rolls every interior wall. A nil seed uses the service source.
	Randomize(ctx context.Context, seed *int64) error

	// Generate applies the named generator. A nil seed uses the service source.
	Generate(ctx context.Context, name string, seed *int64) error

	// ASCII renders the maze as text.
	ASCII() (string, error)

	// PNG renders the maze as an image to w.
	PNG(w io.Writer, style render.Style) error
}
