package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidMoveTilesOpenGrid(t *testing.T) {
	state := openState(7)
	unit := testUnit("runner", TeamPlayerOne, StyleMelee, GridPos{3, 3})
	unit.MoveRange = 2
	state.AddUnit(unit)

	tiles := GetValidMoveTiles(state, unit)
	// cardinal reachability within two steps is the Manhattan diamond
	assert.Len(t, tiles, 12)
	for _, tile := range tiles {
		assert.LessOrEqual(t, ManhattanDistance(unit.Position, tile), 2)
		assert.NotEqual(t, unit.Position, tile)
	}
}

func TestMoveTilesBlockedByTerrainAndEnemies(t *testing.T) {
	state := openState(5)
	unit := testUnit("runner", TeamPlayerOne, StyleMelee, GridPos{0, 2})
	unit.MoveRange = 4
	state.AddUnit(unit)

	// wall across the middle column, gap at the top
	state.AddTerrain(GridPos{2, 1})
	state.AddTerrain(GridPos{2, 2})
	state.AddTerrain(GridPos{2, 3})
	state.AddTerrain(GridPos{2, 4})

	tiles := GetValidMoveTiles(state, unit)
	assert.Contains(t, tiles, GridPos{2, 0})
	assert.NotContains(t, tiles, GridPos{2, 2})
	// the far side is reachable only through the gap, which costs extra steps
	assert.NotContains(t, tiles, GridPos{3, 4})

	enemy := testUnit("guard", TeamPlayerTwo, StyleMelee, GridPos{2, 0})
	state.AddUnit(enemy)
	tiles = GetValidMoveTiles(state, unit)
	assert.NotContains(t, tiles, GridPos{2, 0})
	// the gap is plugged, nothing beyond the wall is reachable now
	assert.NotContains(t, tiles, GridPos{3, 0})
}

func TestMoveTilesPassThroughFriendlies(t *testing.T) {
	state := openState(5)
	unit := testUnit("runner", TeamPlayerOne, StyleMelee, GridPos{0, 0})
	unit.MoveRange = 2
	state.AddUnit(unit)
	friend := testUnit("friend", TeamPlayerOne, StyleMelee, GridPos{1, 0})
	state.AddUnit(friend)

	tiles := GetValidMoveTiles(state, unit)
	// can move through the friend but not end on it
	assert.Contains(t, tiles, GridPos{2, 0})
	assert.NotContains(t, tiles, GridPos{1, 0})
}

func TestPathToTarget(t *testing.T) {
	state := openState(6)
	unit := testUnit("runner", TeamPlayerOne, StyleMelee, GridPos{0, 0})
	state.AddUnit(unit)

	foundPath := GetPathToTarget(state, unit, GridPos{0, 0}, GridPos{3, 2})
	require.Equal(t, 6, len(foundPath)) // shortest cardinal path
	assert.Equal(t, GridPos{0, 0}, foundPath[0])
	assert.Equal(t, GridPos{3, 2}, foundPath[len(foundPath)-1])
	for i := 1; i < len(foundPath); i++ {
		assert.Equal(t, 1, ManhattanDistance(foundPath[i-1], foundPath[i]))
	}
}

func TestPathToTargetDegenerateFallback(t *testing.T) {
	state := openState(5)
	unit := testUnit("runner", TeamPlayerOne, StyleMelee, GridPos{0, 0})
	state.AddUnit(unit)
	// seal off the target completely
	state.AddTerrain(GridPos{3, 4})
	state.AddTerrain(GridPos{4, 3})

	target := GridPos{4, 4}
	assert.False(t, IsReachable(state, unit, unit.Position, target))
	assert.Equal(t, []GridPos{{0, 0}, {4, 4}}, GetPathToTarget(state, unit, unit.Position, target))

	assert.True(t, IsReachable(state, unit, unit.Position, GridPos{3, 3}))
	assert.Equal(t, []GridPos{{2, 2}}, GetPathToTarget(state, unit, GridPos{2, 2}, GridPos{2, 2}))
}
