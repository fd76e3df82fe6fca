package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/util"
)

// BattleContext is the concrete ControllerContext handed to the controller
// whose turn is open. It owns full legality checks on enqueue; the queue
// driver later only re-checks cheap invariants.
type BattleContext struct {
	state     *BattleState
	queue     *CommandQueue
	onExecute func()
	closed    bool
}

func NewBattleContext(state *BattleState, queue *CommandQueue, onExecute func()) *BattleContext {
	return &BattleContext{state: state, queue: queue, onExecute: onExecute}
}

func (c *BattleContext) State() *BattleState {
	return c.state
}

func (c *BattleContext) ActiveUnit() *UnitInstance {
	return c.state.CurrentUnit()
}

func (c *BattleContext) ActionsRemaining() int {
	return c.state.ActionsRemaining - c.queue.Len()
}

func (c *BattleContext) EffectivePosition() GridPos {
	unit := c.ActiveUnit()
	if unit == nil {
		return GridPos{}
	}
	if lastMove, ok := c.queue.GetLastMoveCommand(); ok {
		return lastMove.MoveTarget()
	}
	return unit.Position
}

func (c *BattleContext) IssueCommand(cmd Command) bool {
	if c.closed || c.state.IsGameOver {
		return false
	}
	unit := c.ActiveUnit()
	if unit == nil || !unit.IsActive() {
		return false
	}
	if c.ActionsRemaining() <= 0 {
		return false
	}
	if !c.isLegal(unit, cmd) {
		util.LogGameDebug(fmt.Sprintf("[BattleContext] Rejected %s for %s(%d)", cmd.Type, unit.Name, unit.UnitID()))
		return false
	}
	c.queue.Enqueue(cmd)
	return true
}

func (c *BattleContext) isLegal(unit *UnitInstance, cmd Command) bool {
	effectivePos := c.EffectivePosition()
	switch cmd.Type {
	case CommandMove:
		if !IsValidMoveCommand(c.state, cmd) {
			return false
		}
		target := cmd.MoveTarget()
		for _, tile := range GetValidMoveTiles(c.state, unit, effectivePos) {
			if tile == target {
				return true
			}
		}
		return false
	case CommandAttack:
		target, exists := c.state.GetUnit(cmd.TargetUnitID)
		if !exists || !target.IsActive() {
			return false
		}
		for _, enemy := range GetAttackableEnemies(c.state, unit, effectivePos) {
			if enemy.UnitID() == target.UnitID() {
				return true
			}
		}
		return false
	case CommandHeal:
		target, exists := c.state.GetUnit(cmd.TargetUnitID)
		if !exists || !target.IsActive() {
			return false
		}
		for _, ally := range GetHealableAllies(c.state, unit, effectivePos) {
			if ally.UnitID() == target.UnitID() {
				return true
			}
		}
		return false
	case CommandConceal:
		return unit.Class == ClassOperator && !unit.IsConcealed && !c.queue.HasCommandOfType(CommandConceal)
	case CommandCover:
		return unit.Class == ClassSoldier && !unit.IsCovering && !c.queue.HasCommandOfType(CommandCover)
	}
	return false
}

func (c *BattleContext) UndoLastCommand() bool {
	if c.closed {
		return false
	}
	_, ok := c.queue.Pop()
	return ok
}

// ExecuteTurn ends decision making for this turn and hands the queue to the
// driver. The context goes stale afterwards; further issues are rejected.
func (c *BattleContext) ExecuteTurn() {
	if c.closed {
		return
	}
	c.closed = true
	c.onExecute()
}
