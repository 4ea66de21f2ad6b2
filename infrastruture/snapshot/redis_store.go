// Package snapshot persists maze snapshots in redis.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/wallmaze/maze"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// suffix of the redsync mutex guarding writers
	lockSuffix = ":lock"
	// how long a writer may hold the lock
	defaultLockExpiry = 8 * time.Second
)

var (
	// ErrNotFound is returned by Load when no snapshot is stored.
	ErrNotFound = errors.New("snapshot not found")
	// ErrLockLost is returned on release when the lock had already expired.
	ErrLockLost = errors.New("snapshot lock lost")
)

// envelope is the stored form of a snapshot.
type envelope struct {
	Revision uuid.UUID     `json:"revision"`
	SavedAt  time.Time     `json:"saved_at"`
	Maze     maze.Snapshot `json:"maze"`
}

// RedisStore keeps one maze snapshot under a single redis key.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
	expiry time.Duration
}

// NewRedisStore initializes a RedisStore on client storing under key.
func NewRedisStore(client *redis.Client, key string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if key == "" {
		return nil, errors.New("snapshot key is empty")
	}

	pool := goredis.NewPool(client)
	return &RedisStore{
		client: client,
		locker: redsync.New(pool),
		key:    key,
		expiry: defaultLockExpiry,
	}, nil
}

// Save writes s under a fresh revision.
func (rs *RedisStore) Save(ctx context.Context, s maze.Snapshot) (uuid.UUID, error) {
	env := envelope{
		Revision: uuid.New(),
		SavedAt:  time.Now().UTC(),
		Maze:     s,
	}

	data, err := json.Marshal(env)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := rs.client.Set(ctx, rs.key, data, 0).Err(); err != nil {
		return uuid.Nil, fmt.Errorf("storing snapshot: %w", err)
	}
	return env.Revision, nil
}

// Load reads the stored snapshot.
func (rs *RedisStore) Load(ctx context.Context) (*maze.Snapshot, uuid.UUID, error) {
	data, err := rs.client.Get(ctx, rs.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, uuid.Nil, ErrNotFound
	}
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, uuid.Nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &env.Maze, env.Revision, nil
}

// Lock takes the writers' mutex. The returned func releases it.
func (rs *RedisStore) Lock(ctx context.Context) (func() error, error) {
	mutex := rs.locker.NewMutex(rs.key+lockSuffix, redsync.WithExpiry(rs.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("obtaining snapshot lock: %w", err)
	}

	return func() error {
		ok, err := mutex.Unlock()
		if err != nil {
			return fmt.Errorf("releasing snapshot lock: %w", err)
		}
		if !ok {
			return ErrLockLost
		}
		return nil
	}, nil
}
