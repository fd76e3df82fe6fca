package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTerrainKeepsSpawnBandsClear(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		state := NewBattleState(12)
		GenerateTerrain(state, seed)
		for x := 0; x < state.GridSize; x++ {
			assert.False(t, state.IsTerrain(x, 0))
			assert.False(t, state.IsTerrain(x, 1))
			assert.False(t, state.IsTerrain(x, state.GridSize-2))
			assert.False(t, state.IsTerrain(x, state.GridSize-1))
		}
	}
}

func TestGenerateTerrainIsDeterministic(t *testing.T) {
	first := NewBattleState(12)
	second := NewBattleState(12)
	GenerateTerrain(first, 42)
	GenerateTerrain(second, 42)
	assert.Equal(t, first.Terrain, second.Terrain)
}

func TestSetupBattleStateDeploysBothTeams(t *testing.T) {
	state := SetupBattleState(12, 7, nil)
	require.Len(t, state.Units, 6)

	for _, unit := range state.LivingUnitsOfTeam(TeamPlayerOne) {
		assert.Equal(t, 0, unit.Position.Z)
	}
	for _, unit := range state.LivingUnitsOfTeam(TeamPlayerTwo) {
		assert.Equal(t, state.GridSize-1, unit.Position.Z)
	}
	assert.Len(t, state.LivingUnitsOfTeam(TeamPlayerOne), 3)
	assert.Len(t, state.LivingUnitsOfTeam(TeamPlayerTwo), 3)

	// IDs are assigned in insertion order
	for i, unit := range state.Units {
		assert.Equal(t, uint64(i), unit.UnitID())
		assert.Equal(t, i, unit.LoadoutIndex)
	}
}
