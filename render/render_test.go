package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/beka-birhanu/wallmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCII(t *testing.T) {
	t.Run("Cleared maze has only the border", func(t *testing.T) {
		m, err := maze.New(2, 3)
		require.NoError(t, err)

		out, err := ASCII(m)
		require.NoError(t, err)
		want := "" +
			"+---+---+---+\n" +
			"|           |\n" +
			"+   +   +   +\n" +
			"|           |\n" +
			"+---+---+---+\n"
		assert.Equal(t, want, out)
	})

	t.Run("Filled maze draws every wall", func(t *testing.T) {
		m, err := maze.NewWithWalls(2, 2, true)
		require.NoError(t, err)

		out, err := ASCII(m)
		require.NoError(t, err)
		want := "" +
			"+---+---+\n" +
			"|   |   |\n" +
			"+---+---+\n" +
			"|   |   |\n" +
			"+---+---+\n"
		assert.Equal(t, want, out)
	})
}

func TestImage(t *testing.T) {
	m, err := maze.New(2, 2)
	require.NoError(t, err)
	_, err = m.SetCellWalls(0, 0, maze.NewWalls(true, false, true, true))
	require.NoError(t, err)

	style := Style{CellSize: 10, LineThickness: 2, LineColor: color.Black, Background: color.White}
	img, err := Image(m, style)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	black := color.RGBAModel.Convert(color.Black)
	white := color.RGBAModel.Convert(color.White)

	// South wall of (0, 0) is centred on y = 10.
	assert.Equal(t, black, img.At(5, 10))
	// South wall of (0, 1) is open.
	assert.Equal(t, white, img.At(15, 10))
	// Interior East walls are open.
	assert.Equal(t, white, img.At(10, 5))
	// Borders.
	assert.Equal(t, black, img.At(0, 5))
	assert.Equal(t, black, img.At(19, 5))
	// Cell centre.
	assert.Equal(t, white, img.At(5, 5))
}

func TestImageRejectsBadStyle(t *testing.T) {
	m, err := maze.New(1, 1)
	require.NoError(t, err)

	_, err = Image(m, Style{CellSize: 4, LineThickness: 9})
	assert.ErrorIs(t, err, ErrInvalidStyle)
	_, err = Image(m, Style{CellSize: -1})
	assert.ErrorIs(t, err, ErrInvalidStyle)
}

func TestImageRejectsOversizedStyle(t *testing.T) {
	small, err := maze.New(2, 2)
	require.NoError(t, err)
	large, err := maze.New(300, 300)
	require.NoError(t, err)

	tests := []struct {
		name  string
		grid  Grid
		style Style
	}{
		{"Cell size that overflows", small, Style{CellSize: 1 << 40, LineThickness: 1}},
		{"Cell size above the cap", small, Style{CellSize: MaxCellSize + 1, LineThickness: 1}},
		{"Too many pixels", large, Style{CellSize: MaxCellSize, LineThickness: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Image(tt.grid, tt.style)
			assert.ErrorIs(t, err, ErrInvalidStyle)
			assert.Nil(t, img)
		})
	}

	t.Run("Largest cell on a small maze", func(t *testing.T) {
		img, err := Image(small, Style{CellSize: MaxCellSize, LineThickness: 1})
		require.NoError(t, err)
		assert.Equal(t, 2*MaxCellSize, img.Bounds().Dx())
	})
}

func TestPNG(t *testing.T) {
	m, err := maze.NewWithWalls(3, 4, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, m, Style{}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4*DefaultStyle.CellSize, img.Bounds().Dx())
	assert.Equal(t, 3*DefaultStyle.CellSize, img.Bounds().Dy())
}
