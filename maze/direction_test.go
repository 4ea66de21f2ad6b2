package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, East, West.Opposite())
}

func TestNeighbor(t *testing.T) {
	m := mustNew(t, 3, 4)

	cases := []struct {
		i, j   int
		side   Side
		ni, nj int
		ok     bool
	}{
		{1, 1, South, 2, 1, true},
		{1, 1, East, 1, 2, true},
		{1, 1, North, 0, 1, true},
		{1, 1, West, 1, 0, true},
		{0, 0, North, 0, 0, false},
		{2, 3, East, 0, 0, false},
		{5, 0, South, 0, 0, false},
		{1, 1, Side(7), 0, 0, false},
	}
	for _, tc := range cases {
		ni, nj, ok := m.Neighbor(tc.i, tc.j, tc.side)
		assert.Equal(t, tc.ok, ok, "(%d, %d) %s", tc.i, tc.j, tc.side)
		assert.Equal(t, [2]int{tc.ni, tc.nj}, [2]int{ni, nj})
	}
}

func TestSetWall(t *testing.T) {
	m := mustNew(t, 3, 3)
	m.Fill()

	ok, err := m.SetWall(1, 1, East, false)
	require.NoError(t, err)
	assert.True(t, ok)

	w, _ := m.CellWalls(1, 1)
	assert.Equal(t, NewWalls(true, false, true, true), w)
	right, _ := m.CellWalls(1, 2)
	assert.False(t, right[West])

	ok, err = m.SetWall(0, 1, North, false)
	require.NoError(t, err)
	assert.False(t, ok)
	w, _ = m.CellWalls(0, 1)
	assert.True(t, w[North])

	_, err = m.SetWall(3, 0, South, true)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
