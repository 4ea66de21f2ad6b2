// Package mazeapi exposes the served maze over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/wallmaze/maze"
	"github.com/google/uuid"
)

// MazeInfoResponse describes the served maze.
type MazeInfoResponse struct {
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	Revision   uuid.UUID `json:"revision"`
	Generators []string  `json:"generators"`
}

// WallsDTO is the wire form of a cell's four walls. Pointers make every side
// required on input.
type WallsDTO struct {
	South *bool `json:"south" binding:"required"`
	East  *bool `json:"east" binding:"required"`
	North *bool `json:"north" binding:"required"`
	West  *bool `json:"west" binding:"required"`
}

// CellResponse reports the walls of one cell.
type CellResponse struct {
	Row   int      `json:"row"`
	Col   int      `json:"col"`
	Walls WallsDTO `json:"walls"`
}

// SetCellResponse reports a cell after a write. Applied is false when a
// boundary wall was asked to open and was kept blocked.
type SetCellResponse struct {
	CellResponse
	Applied bool `json:"applied"`
}

// RandomizeRequest optionally pins the seed.
type RandomizeRequest struct {
	Seed *int64 `json:"seed"`
}

// GenerateRequest names a generator and optionally pins the seed.
type GenerateRequest struct {
	Generator string `json:"generator" binding:"required"`
	Seed      *int64 `json:"seed"`
}

func toDTO(w maze.Walls) WallsDTO {
	south, east, north, west := w[maze.South], w[maze.East], w[maze.North], w[maze.West]
	return WallsDTO{South: &south, East: &east, North: &north, West: &west}
}

func (d WallsDTO) walls() maze.Walls {
	return maze.NewWalls(*d.South, *d.East, *d.North, *d.West)
}
