package mazeapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/wallmaze/generator"
	"github.com/beka-birhanu/wallmaze/maze"
	"github.com/beka-birhanu/wallmaze/render"
	"github.com/beka-birhanu/wallmaze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves maze queries and edits.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is nil")
	}
	return &MazeController{mazeService: ms}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	m := route.Group("/maze")
	{
		m.GET("", mc.info)
		m.GET("/cells/:row/:col", mc.cell)
		m.GET("/ascii", mc.ascii)
		m.GET("/png", mc.png)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	m := route.Group("/maze")
	{
		m.PUT("/cells/:row/:col", mc.setCell)
		m.POST("/fill", mc.fill)
		m.POST("/clear", mc.clear)
		m.POST("/randomize", mc.randomize)
		m.POST("/generate", mc.generate)
	}
}

// info returns dimensions, revision and generator names.
func (mc *MazeController) info(ctx *gin.Context) {
	rows, cols, rev := mc.mazeService.Dimensions()
	ctx.JSON(http.StatusOK, &MazeInfoResponse{
		Rows:       rows,
		Cols:       cols,
		Revision:   rev,
		Generators: generator.Names(),
	})
}

// cell returns the walls of one cell.
func (mc *MazeController) cell(ctx *gin.Context) {
	row, col, ok := coordinates(ctx)
	if !ok {
		return
	}

	w, err := mc.mazeService.Cell(row, col)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &CellResponse{Row: row, Col: col, Walls: toDTO(w)})
}

// setCell writes the walls of one cell.
func (mc *MazeController) setCell(ctx *gin.Context) {
	row, col, ok := coordinates(ctx)
	if !ok {
		return
	}

	var request WallsDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, applied, err := mc.mazeService.SetCell(ctx, row, col, request.walls())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &SetCellResponse{
		CellResponse: CellResponse{Row: row, Col: col, Walls: toDTO(w)},
		Applied:      applied,
	})
}

func (mc *MazeController) fill(ctx *gin.Context) {
	if err := mc.mazeService.Fill(ctx); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (mc *MazeController) clear(ctx *gin.Context) {
	if err := mc.mazeService.Clear(ctx); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// randomize accepts an empty body or {"seed": n}.
func (mc *MazeController) randomize(ctx *gin.Context) {
	var request RandomizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.mazeService.Randomize(ctx, request.Seed); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.mazeService.Generate(ctx, request.Generator, request.Seed); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (mc *MazeController) ascii(ctx *gin.Context) {
	out, err := mc.mazeService.ASCII()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(out))
}

// png renders the maze; "cell" and "line" override the pixel sizes.
func (mc *MazeController) png(ctx *gin.Context) {
	var style render.Style
	params := []struct {
		name string
		dst  *int
	}{
		{"cell", &style.CellSize},
		{"line", &style.LineThickness},
	}
	for _, p := range params {
		raw := ctx.Query(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + p.name})
			return
		}
		*p.dst = v
	}

	var buf bytes.Buffer
	if err := mc.mazeService.PNG(&buf, style); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// coordinates parses the :row and :col path params, answering 400 on failure.
func coordinates(ctx *gin.Context) (int, int, bool) {
	row, err := strconv.Atoi(ctx.Param("row"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid row"})
		return 0, 0, false
	}
	col, err := strconv.Atoi(ctx.Param("col"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid col"})
		return 0, 0, false
	}
	return row, col, true
}

func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrOutOfRange):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, generator.ErrUnknownGenerator), errors.Is(err, render.ErrInvalidStyle):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while handling maze request"})
	}
}
