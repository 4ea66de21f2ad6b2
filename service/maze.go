package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/beka-birhanu/wallmaze/generator"
	"github.com/beka-birhanu/wallmaze/infrastruture/snapshot"
	"github.com/beka-birhanu/wallmaze/maze"
	"github.com/beka-birhanu/wallmaze/render"
	"github.com/beka-birhanu/wallmaze/service/i"
	"github.com/google/uuid"
)

// MazeConfig holds what NewMazeService needs.
type MazeConfig struct {
	Rows   int
	Cols   int
	Seed   int64           // 0 seeds from the clock
	Store  i.SnapshotStore // Optional; nil keeps the maze in memory only
	Logger i.Logger
}

// Maze serves one maze. maze.Maze has no locking of its own, so every access
// goes through mu; writes additionally hold the store lock while they mutate
// and save.
type Maze struct {
	mu       sync.Mutex
	maze     *maze.Maze
	rng      *rand.Rand
	revision uuid.UUID
	store    i.SnapshotStore
	logger   i.Logger
}

// NewMazeService restores the stored maze when its dimensions match the
// configuration, and starts a new open maze otherwise.
func NewMazeService(ctx context.Context, cfg MazeConfig) (*Maze, error) {
	if cfg.Logger == nil {
		return nil, errors.New("maze service logger is nil")
	}

	s := &Maze{
		rng:    generator.NewSource(cfg.Seed),
		store:  cfg.Store,
		logger: cfg.Logger,
	}

	if s.store != nil {
		restored, rev, err := s.restore(ctx, cfg.Rows, cfg.Cols)
		if err != nil {
			return nil, err
		}
		if restored != nil {
			s.maze, s.revision = restored, rev
			s.logger.Info(fmt.Sprintf("Restored %dx%d maze at revision %s", cfg.Rows, cfg.Cols, rev))
			return s, nil
		}
	}

	m, err := maze.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	s.maze = m
	s.logger.Info(fmt.Sprintf("Created %dx%d maze", cfg.Rows, cfg.Cols))
	return s, nil
}

func (s *Maze) restore(ctx context.Context, rows, cols int) (*maze.Maze, uuid.UUID, error) {
	snap, rev, err := s.store.Load(ctx)
	if errors.Is(err, snapshot.ErrNotFound) {
		return nil, uuid.Nil, nil
	}
	if err != nil {
		return nil, uuid.Nil, err
	}

	if snap.Rows != rows || snap.Cols != cols {
		s.logger.Warn(fmt.Sprintf("Ignoring stored %dx%d maze, configured %dx%d", snap.Rows, snap.Cols, rows, cols))
		return nil, uuid.Nil, nil
	}

	m, err := maze.FromSnapshot(*snap)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Ignoring stored maze: %v", err))
		return nil, uuid.Nil, nil
	}
	return m, rev, nil
}

// Dimensions returns rows, cols and the last saved revision.
func (s *Maze) Dimensions() (int, int, uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maze.Rows(), s.maze.Cols(), s.revision
}

// Cell returns the walls of cell (row, col).
func (s *Maze) Cell(row, col int) (maze.Walls, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maze.CellWalls(row, col)
}

// SetCell writes the walls of cell (row, col) and returns them as this write
// left them.
func (s *Maze) SetCell(ctx context.Context, row, col int, w maze.Walls) (maze.Walls, bool, error) {
	var (
		applied bool
		stored  maze.Walls
	)
	err := s.update(ctx, func(m *maze.Maze) error {
		var err error
		if applied, err = m.SetCellWalls(row, col, w); err != nil {
			return err
		}
		stored, err = m.CellWalls(row, col)
		return err
	})
	if err != nil {
		return maze.Walls{}, false, err
	}
	if !applied {
		s.logger.Warn(fmt.Sprintf("Kept boundary walls of (%d, %d) blocked", row, col))
	}
	return stored, applied, nil
}

// Fill blocks every wall.
func (s *Maze) Fill(ctx context.Context) error {
	return s.update(ctx, func(m *maze.Maze) error {
		m.Fill()
		return nil
	})
}

// Clear opens every interior wall.
func (s *Maze) Clear(ctx context.Context) error {
	return s.update(ctx, func(m *maze.Maze) error {
		m.Clear()
		return nil
	})
}

// Randomize re-rolls every interior wall.
func (s *Maze) Randomize(ctx context.Context, seed *int64) error {
	return s.update(ctx, func(m *maze.Maze) error {
		m.Randomize(s.source(seed))
		return nil
	})
}

// Generate applies the named generator.
func (s *Maze) Generate(ctx context.Context, name string, seed *int64) error {
	return s.update(ctx, func(m *maze.Maze) error {
		rule, err := generator.ByName(name, s.source(seed), m.Rows(), m.Cols())
		if err != nil {
			return err
		}
		m.FillWith(rule)
		return nil
	})
}

// ASCII renders the maze as text.
func (s *Maze) ASCII() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return render.ASCII(s.maze)
}

// PNG renders the maze as an image.
func (s *Maze) PNG(w io.Writer, style render.Style) error {
	s.mu.Lock()
	img, err := render.Image(s.maze, style)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return render.EncodePNG(w, img)
}

// source returns a fresh source for seed, or the service source when seed is nil.
// Callers hold mu.
func (s *Maze) source(seed *int64) *rand.Rand {
	if seed == nil {
		return s.rng
	}
	return generator.NewSource(*seed)
}

// update runs fn on a working copy under the store lock and swaps it in once
// saved, so a failed save leaves the served maze unchanged. When another
// process saved since our last write, its snapshot is the base instead.
func (s *Maze) update(ctx context.Context, fn func(*maze.Maze) error) error {
	if s.store != nil {
		unlock, err := s.store.Lock(ctx)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Locking maze: %v", err))
			return err
		}
		defer func() {
			if err := unlock(); err != nil {
				s.logger.Error(fmt.Sprintf("Releasing maze lock: %v", err))
			}
		}()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.maze.Snapshot()
	if s.store != nil {
		latest, rev, err := s.store.Load(ctx)
		switch {
		case errors.Is(err, snapshot.ErrNotFound):
		case err != nil:
			s.logger.Error(fmt.Sprintf("Loading latest maze: %v", err))
			return err
		case rev != s.revision && latest.Rows == base.Rows && latest.Cols == base.Cols:
			base = *latest
		}
	}

	work, err := maze.FromSnapshot(base)
	if err != nil {
		return err
	}
	if err := fn(work); err != nil {
		return err
	}

	if s.store != nil {
		rev, err := s.store.Save(ctx, work.Snapshot())
		if err != nil {
			s.logger.Error(fmt.Sprintf("Saving maze: %v", err))
			return err
		}
		s.revision = rev
	}

	s.maze = work
	return nil
}
