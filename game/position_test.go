package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosKeyRoundTrip(t *testing.T) {
	for _, pos := range []GridPos{{0, 0}, {3, 7}, {-2, 5}, {11, 11}} {
		decoded, ok := PosFromKey(pos.ToKey())
		require.True(t, ok)
		assert.Equal(t, pos, decoded)
	}
}

func TestPosFromKeyRejectsGarbage(t *testing.T) {
	for _, key := range []string{"", "3", "a,b", "1,2,x"} {
		_, ok := PosFromKey(key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestAdjacency(t *testing.T) {
	center := GridPos{X: 3, Z: 3}
	adjacent := 0
	for x := 0; x < 7; x++ {
		for z := 0; z < 7; z++ {
			if IsAdjacent(center, GridPos{X: x, Z: z}) {
				adjacent++
			}
		}
	}
	assert.Equal(t, 8, adjacent)
	assert.False(t, IsAdjacent(center, center))
	assert.False(t, IsAdjacent(center, GridPos{X: 5, Z: 3}))
}

func TestIsDiagonal(t *testing.T) {
	origin := GridPos{X: 2, Z: 2}
	assert.True(t, IsDiagonal(origin, GridPos{X: 3, Z: 3}))
	assert.True(t, IsDiagonal(origin, GridPos{X: 1, Z: 3}))
	assert.False(t, IsDiagonal(origin, GridPos{X: 2, Z: 3}))
	assert.False(t, IsDiagonal(origin, GridPos{X: 4, Z: 4}))
}

func TestDistances(t *testing.T) {
	a := GridPos{X: 1, Z: 1}
	b := GridPos{X: 4, Z: 3}
	assert.Equal(t, 5, ManhattanDistance(a, b))
	assert.Equal(t, 3, ChebyshevDistance(a, b))
}

func TestTileCenter(t *testing.T) {
	center := GridPos{X: 2, Z: 5}.ToTileCenter()
	assert.InDelta(t, 2.5, center.X(), 1e-12)
	assert.InDelta(t, 5.5, center.Y(), 1e-12)
}
