package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/beka-birhanu/wallmaze/maze"
)

// ErrInvalidStyle is returned for a style that cannot be drawn.
var ErrInvalidStyle = errors.New("invalid render style")

const (
	// MaxCellSize bounds Style.CellSize.
	MaxCellSize = 256
	// MaxPixels bounds the area of a rendered image.
	MaxPixels = 1 << 24
)

// Style controls image rendering.
type Style struct {
	CellSize      int         // Side of a cell in pixels
	LineThickness int         // Wall thickness in pixels
	LineColor     color.Color // Wall color
	Background    color.Color // Fill behind the walls
}

// DefaultStyle is used for zero fields of a Style.
var DefaultStyle = Style{
	CellSize:      20,
	LineThickness: 2,
	LineColor:     color.Black,
	Background:    color.White,
}

func (s Style) withDefaults() Style {
	if s.CellSize == 0 {
		s.CellSize = DefaultStyle.CellSize
	}
	if s.LineThickness == 0 {
		s.LineThickness = DefaultStyle.LineThickness
	}
	if s.LineColor == nil {
		s.LineColor = DefaultStyle.LineColor
	}
	if s.Background == nil {
		s.Background = DefaultStyle.Background
	}
	return s
}

// validate checks s for a rows x cols grid. The width and height are checked
// one factor at a time so the products cannot overflow.
func (s Style) validate(rows, cols int) error {
	if s.CellSize < 1 || s.CellSize > MaxCellSize {
		return ErrInvalidStyle
	}
	if s.LineThickness < 1 || s.LineThickness > s.CellSize {
		return ErrInvalidStyle
	}
	if rows < 1 || cols < 1 || cols > MaxPixels/s.CellSize {
		return ErrInvalidStyle
	}
	width := cols * s.CellSize
	if rows > MaxPixels/s.CellSize/width {
		return ErrInvalidStyle
	}
	return nil
}

// Image draws g onto a new RGBA image of Cols*CellSize x Rows*CellSize pixels.
// Interior walls are centred on the cell edge; border walls are drawn at half
// thickness inside the image.
func Image(g Grid, style Style) (*image.RGBA, error) {
	style = style.withDefaults()
	if err := style.validate(g.Rows(), g.Cols()); err != nil {
		return nil, err
	}

	cell, thick, half := style.CellSize, style.LineThickness, style.LineThickness/2
	width, height := g.Cols()*cell, g.Rows()*cell

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	ink := image.NewUniform(style.LineColor)
	line := func(r image.Rectangle) {
		draw.Draw(img, r.Intersect(img.Bounds()), ink, image.Point{}, draw.Src)
	}

	// Borders
	border := max(half, 1)
	line(image.Rect(0, 0, border, height))
	line(image.Rect(width-border, 0, width, height))
	line(image.Rect(0, 0, width, border))
	line(image.Rect(0, height-border, width, height))

	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			w, err := g.CellWalls(i, j)
			if err != nil {
				return nil, err
			}

			x, y := j*cell, i*cell
			if i < g.Rows()-1 && w.Has(maze.South) {
				edge := y + cell - half
				line(image.Rect(x, edge, x+cell, edge+thick))
			}
			if j < g.Cols()-1 && w.Has(maze.East) {
				edge := x + cell - half
				line(image.Rect(edge, y, edge+thick, y+cell))
			}
		}
	}

	return img, nil
}

// PNG encodes the image of g to w.
func PNG(w io.Writer, g Grid, style Style) error {
	img, err := Image(g, style)
	if err != nil {
		return err
	}
	return EncodePNG(w, img)
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
