package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/util"
)

// Battle is the turn coordinator: it owns the lifecycle state machine, the
// per-turn command queue, and the routing between scheduler, controllers and
// executor. Exactly one turn is open at a time and all state mutation happens
// inside that window.
type Battle struct {
	state       *BattleState
	controllers *ControllerManager
	lifecycle   *TurnLifecycle
	executor    *RulesExecutor
	queue       *CommandQueue
	finished    bool
}

func NewBattle(state *BattleState, controllers *ControllerManager) *Battle {
	b := &Battle{
		state:       state,
		controllers: controllers,
		lifecycle:   NewTurnLifecycle(state),
		queue:       NewCommandQueue(),
	}
	b.executor = NewRulesExecutor(state, b.finishTurn)
	return b
}

func (b *Battle) State() *BattleState {
	return b.state
}

func (b *Battle) Executor() *RulesExecutor {
	return b.executor
}

func (b *Battle) Queue() *CommandQueue {
	return b.queue
}

// Start schedules the first unit and opens its turn.
func (b *Battle) Start() {
	b.openTurn(b.lifecycle.AdvanceTurn())
}

func (b *Battle) openTurn(unit *UnitInstance) {
	if b.finished {
		return
	}
	if unit == nil || b.state.IsGameOver {
		b.endBattle()
		return
	}
	ctx := NewBattleContext(b.state, b.queue, b.processQueue)
	b.controllers.NotifyTurnStart(unit.Team, ctx)
}

func (b *Battle) processQueue() {
	ProcessCommandQueue(b.queue, b.executor)
}

// finishTurn runs once the executor reports the queue complete, reaction
// included. It is a no-op when the match already ended mid-queue.
func (b *Battle) finishTurn() {
	if b.finished {
		return
	}
	if b.state.IsGameOver {
		b.endBattle()
		return
	}
	if unit := b.state.CurrentUnit(); unit != nil {
		b.controllers.NotifyTurnEnd(unit.Team)
	}
	b.lifecycle.EndTurn()
	b.openTurn(b.lifecycle.AdvanceTurn())
}

func (b *Battle) endBattle() {
	if b.finished {
		return
	}
	b.finished = true
	util.LogGameInfo(fmt.Sprintf("[Battle] Game over, winner: %q", b.state.Winner))
	b.controllers.NotifyGameEnd(b.state.Winner)
}

func (b *Battle) IsFinished() bool {
	return b.finished
}
