package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLOSOpenGrid(t *testing.T) {
	state := openState(8)
	assert.True(t, HasLineOfSight(state, GridPos{0, 0}, GridPos{7, 7}))
	assert.True(t, HasLineOfSight(state, GridPos{0, 5}, GridPos{7, 5}))
	assert.True(t, HasLineOfSight(state, GridPos{3, 3}, GridPos{3, 3}))
}

func TestLOSTerrainBlocksInterior(t *testing.T) {
	state := openState(8)
	state.AddTerrain(GridPos{2, 0})
	assert.False(t, HasLineOfSight(state, GridPos{0, 0}, GridPos{4, 0}))
	assert.True(t, HasLineOfSight(state, GridPos{0, 1}, GridPos{4, 1}))
}

func TestLOSUnitBlocksAndExclusion(t *testing.T) {
	state := openState(8)
	blocker := testUnit("blocker", TeamPlayerTwo, StyleMelee, GridPos{2, 0})
	state.AddUnit(blocker)
	assert.False(t, HasLineOfSight(state, GridPos{0, 0}, GridPos{4, 0}))
	assert.True(t, HasLineOfSight(state, GridPos{0, 0}, GridPos{4, 0}, blocker.UnitID()))

	blocker.Health = 0 // dead units never block
	assert.True(t, HasLineOfSight(state, GridPos{0, 0}, GridPos{4, 0}))
}

// The diagonal from (0,0) to (2,2) passes exactly through the corner shared
// by (1,0) and (0,1). A single grazed blocker lets sight peek past; blockers
// on both sides pinch the line shut.
func TestLOSCornerGraze(t *testing.T) {
	state := openState(8)
	state.AddTerrain(GridPos{1, 0})
	assert.True(t, HasLineOfSight(state, GridPos{0, 0}, GridPos{2, 2}))

	state.AddTerrain(GridPos{0, 1})
	assert.False(t, HasLineOfSight(state, GridPos{0, 0}, GridPos{2, 2}))
}

func TestLOSSymmetry(t *testing.T) {
	state := openState(8)
	for _, tile := range []GridPos{{3, 1}, {4, 4}, {1, 5}, {2, 2}, {5, 3}} {
		state.AddTerrain(tile)
	}
	positions := []GridPos{{0, 0}, {7, 0}, {0, 7}, {7, 7}, {3, 0}, {0, 4}, {6, 6}}
	for _, a := range positions {
		for _, b := range positions {
			assert.Equal(t, HasLineOfSight(state, a, b), HasLineOfSight(state, b, a),
				"asymmetric sight between %s and %s", a.ToString(), b.ToString())
		}
	}
}

func TestGetAdjacentTiles(t *testing.T) {
	state := openState(5)
	assert.Len(t, GetAdjacentTiles(state, 2, 2), 8)
	assert.Len(t, GetAdjacentTiles(state, 0, 0), 3)

	state.AddTerrain(GridPos{1, 0})
	tiles := GetAdjacentTiles(state, 0, 0)
	require.Len(t, tiles, 2)
	assert.NotContains(t, tiles, GridPos{1, 0})
}

func TestGetTilesInLOSExcludesAdjacent(t *testing.T) {
	state := openState(5)
	from := GridPos{2, 2}
	tiles := GetTilesInLOS(state, from, true)
	assert.Len(t, tiles, 5*5-1-8)
	for _, tile := range tiles {
		assert.False(t, IsAdjacent(from, tile))
		assert.NotEqual(t, from, tile)
	}
}
