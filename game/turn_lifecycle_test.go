package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lifecycleFixture() (*BattleState, *TurnLifecycle, *UnitInstance, *UnitInstance) {
	state := openState(8)
	one := testUnit("one", TeamPlayerOne, StyleMelee, GridPos{0, 0})
	one.Speed = 5
	two := testUnit("two", TeamPlayerTwo, StyleMelee, GridPos{7, 7})
	two.Speed = 5
	state.AddUnit(one)
	state.AddUnit(two)
	return state, NewTurnLifecycle(state), one, two
}

func TestAdvanceTurnOpensTurn(t *testing.T) {
	state, lifecycle, one, _ := lifecycleFixture()

	next := lifecycle.AdvanceTurn()
	require.NotNil(t, next)
	assert.Equal(t, one.UnitID(), next.UnitID())
	assert.Equal(t, one.UnitID(), state.CurrentUnitID)
	assert.Equal(t, ActionsPerTurn, state.ActionsRemaining)
	assert.Equal(t, 0, one.Accumulator)
	assert.Equal(t, PhaseTurnStarted, lifecycle.Phase())
}

func TestEndTurnBanksUnspentActions(t *testing.T) {
	state, lifecycle, one, _ := lifecycleFixture()
	lifecycle.AdvanceTurn()

	state.ActionsRemaining = 1
	lifecycle.EndTurn()
	assert.Equal(t, 1, one.SpeedBonus)

	// the bonus feeds exactly one scheduling pass and is gone afterwards
	lifecycle.AdvanceTurn()
	assert.Equal(t, 0, one.SpeedBonus)
}

func TestSpeedBonusFlipsNextSelection(t *testing.T) {
	_, lifecycle, one, two := lifecycleFixture()
	first := lifecycle.AdvanceTurn()
	require.Equal(t, one.UnitID(), first.UnitID())

	// passing the whole turn banks both actions
	lifecycle.EndTurn()
	assert.Equal(t, ActionsPerTurn, one.SpeedBonus)

	// two is at 10, one restarts from 0 with +2, two goes next regardless
	next := lifecycle.AdvanceTurn()
	require.NotNil(t, next)
	assert.Equal(t, two.UnitID(), next.UnitID())
}

func TestAdvanceTurnClearsCoverState(t *testing.T) {
	state, lifecycle, one, _ := lifecycleFixture()
	lifecycle.AdvanceTurn()

	ActivateCover(state, one)
	require.True(t, one.IsCovering)
	require.NotEmpty(t, one.CoveredTiles)

	lifecycle.EndTurn()
	// force the same unit to be picked again
	one.Accumulator = 20
	next := lifecycle.AdvanceTurn()
	require.Equal(t, one.UnitID(), next.UnitID())
	assert.False(t, one.IsCovering)
	assert.Empty(t, one.CoveredTiles)
}
