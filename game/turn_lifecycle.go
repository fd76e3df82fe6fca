package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/util"
)

type TurnPhase int

const (
	PhaseIdle TurnPhase = iota
	PhaseTurnEnding
	PhaseNextUnitSelected
	PhaseBonusConsumed
	PhaseTurnStarted
)

// TurnLifecycle owns the implicit timing contracts around turn transitions:
// the speed bonus awarded at turn end must feed exactly one scheduling pass
// and be cleared before the next turn opens, and the selected unit's
// accumulator reset is a turn-start side effect, not a scheduler one.
type TurnLifecycle struct {
	state *BattleState
	phase TurnPhase
}

func NewTurnLifecycle(state *BattleState) *TurnLifecycle {
	return &TurnLifecycle{state: state, phase: PhaseIdle}
}

func (t *TurnLifecycle) Phase() TurnPhase {
	return t.phase
}

// EndTurn closes the active unit's turn, rewarding unspent actions with a
// transient speed bonus for the next scheduling pass.
func (t *TurnLifecycle) EndTurn() {
	t.phase = PhaseTurnEnding
	unit := t.state.CurrentUnit()
	if unit == nil {
		return
	}
	if t.state.ActionsRemaining > 0 {
		unit.SpeedBonus = t.state.ActionsRemaining
		util.LogGameDebug(fmt.Sprintf("[TurnLifecycle] %s(%d) banks +%d speed for next pass", unit.Name, unit.UnitID(), unit.SpeedBonus))
	}
}

// AdvanceTurn runs one scheduling pass, consumes every pending speed bonus,
// and opens the selected unit's turn. Returns nil when no unit is left alive.
func (t *TurnLifecycle) AdvanceTurn() *UnitInstance {
	next := SelectNextUnit(t.state)
	t.phase = PhaseNextUnitSelected
	if next == nil {
		return nil
	}

	// every bonus has now contributed to exactly one scheduling pass
	for _, unit := range t.state.Units {
		unit.SpeedBonus = 0
	}
	t.phase = PhaseBonusConsumed

	next.Accumulator = 0
	next.ActionsUsed = 0
	next.IsCovering = false
	next.CoveredTiles = make(map[string]bool)
	t.state.CurrentUnitID = next.UnitID()
	t.state.ActionsRemaining = ActionsPerTurn
	t.phase = PhaseTurnStarted
	util.LogGameInfo(fmt.Sprintf("[TurnLifecycle] Turn starts for %s(%d) of %s", next.Name, next.UnitID(), next.Team))
	util.LogUnitDebug(next.DebugString("TurnLifecycle"))
	return next
}
