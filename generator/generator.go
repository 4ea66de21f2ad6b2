// Package generator provides maze layouts expressed as fill rules.
//
// Every generator returns a maze.Rule to be passed to (*maze.Maze).FillWith.
// Rules that draw randomness take an explicit source so layouts can be
// reproduced from a seed.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/beka-birhanu/wallmaze/maze"
)

// Generator names accepted by ByName.
const (
	NameFill       = "fill"
	NameClear      = "clear"
	NameRandom     = "random"
	NameBinaryTree = "binary-tree"
)

// ErrUnknownGenerator is returned by ByName for an unregistered name.
var ErrUnknownGenerator = errors.New("unknown generator")

// NewSource returns a rand.Rand seeded with seed, or with the current time when seed is 0.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform sets every South and East wall to blocked.
func Uniform(blocked bool) maze.Rule {
	return func(int, int) (bool, bool) {
		return blocked, blocked
	}
}

// Random draws each wall from an unbiased coin.
func Random(rng *rand.Rand) maze.Rule {
	return Biased(rng, 0.5)
}

// Biased blocks each wall with probability p, clamped to [0, 1].
func Biased(rng *rand.Rand, p float64) maze.Rule {
	p = max(0, min(1, p))
	return func(int, int) (bool, bool) {
		return rng.Float64() < p, rng.Float64() < p
	}
}

// BinaryTree carves a perfect maze: every cell opens exactly one of its South
// or East walls. Cells on the last row can only open East, cells on the last
// column only South, and the bottom-right cell opens neither.
func BinaryTree(rng *rand.Rand, rows, cols int) maze.Rule {
	return func(i, j int) (bool, bool) {
		lastRow, lastCol := i == rows-1, j == cols-1
		switch {
		case lastRow && lastCol:
			return true, true
		case lastRow:
			return true, false
		case lastCol:
			return false, true
		case rng.Intn(2) == 0:
			return false, true
		default:
			return true, false
		}
	}
}

// ByName returns the rule registered under name for a rows x cols maze.
func ByName(name string, rng *rand.Rand, rows, cols int) (maze.Rule, error) {
	switch name {
	case NameFill:
		return Uniform(true), nil
	case NameClear:
		return Uniform(false), nil
	case NameRandom:
		return Random(rng), nil
	case NameBinaryTree:
		return BinaryTree(rng, rows, cols), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// Names lists the names ByName accepts, sorted.
func Names() []string {
	names := []string{NameFill, NameClear, NameRandom, NameBinaryTree}
	sort.Strings(names)
	return names
}
