package i

import (
	"context"

	"github.com/beka-birhanu/wallmaze/maze"
	"github.com/google/uuid"
)

// SnapshotStore persists the served maze between restarts and serialises
// writers across processes.
type SnapshotStore interface {
	// Save stores s and returns the revision it was stored under.
	Save(ctx context.Context, s maze.Snapshot) (uuid.UUID, error)

	// Load returns the stored snapshot and its revision.
	// Returns an error wrapping snapshot.ErrNotFound when nothing is stored.
	Load(ctx context.Context) (*maze.Snapshot, uuid.UUID, error)

	// Lock acquires the store-wide write lock. The returned func releases it
	// and reports a lock that expired while held.
	Lock(ctx context.Context) (func() error, error)
}
