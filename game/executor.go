package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/util"
)

// RulesExecutor is the headless presentation layer: it applies each command's
// rule outcome to the battle state immediately and completes synchronously.
// A rendering client would replace this with one that animates first and
// calls the continuations when the effect finishes.
type RulesExecutor struct {
	state     *BattleState
	queueDone func()

	// OnEvent, when set, receives one message per resolved effect so a
	// server can relay outcomes to remote peers.
	OnEvent func(msg Message)
}

func NewRulesExecutor(state *BattleState, queueDone func()) *RulesExecutor {
	return &RulesExecutor{state: state, queueDone: queueDone}
}

func (e *RulesExecutor) emit(msg Message) {
	if e.OnEvent != nil {
		e.OnEvent(msg)
	}
}

func (e *RulesExecutor) spendAction(unit *UnitInstance) {
	e.state.ActionsRemaining--
	unit.ActionsUsed++
}

func (e *RulesExecutor) ExecuteMove(cmd Command, onComplete func()) {
	unit := e.state.CurrentUnit()
	if e.state.IsGameOver || unit == nil || !IsValidMoveCommand(e.state, cmd) {
		onComplete()
		return
	}
	target := cmd.MoveTarget()
	if !IsReachable(e.state, unit, unit.Position, target) || e.state.UnitAt(target.X, target.Z) != nil {
		util.LogGameError(fmt.Sprintf("[RulesExecutor] Stale move for %s(%d) to %s", unit.Name, unit.UnitID(), target.ToString()))
		onComplete()
		return
	}
	foundPath := GetPathToTarget(e.state, unit, unit.Position, target)
	unit.Position = target
	e.spendAction(unit)
	e.emit(VisualUnitMoved{UnitID: unit.UnitID(), Path: foundPath, EndPosition: target})
	onComplete()
}

func (e *RulesExecutor) ExecuteAttack(cmd Command, onComplete func()) {
	attacker := e.state.CurrentUnit()
	target, exists := e.state.GetUnit(cmd.TargetUnitID)
	if e.state.IsGameOver || attacker == nil || !exists || !target.IsActive() {
		onComplete()
		return
	}
	e.spendAction(attacker)
	e.resolveHit(attacker, target)
	onComplete()
}

// resolveHit applies damage with the conceal override: a concealed target
// negates the hit and loses its concealment instead.
func (e *RulesExecutor) resolveHit(attacker, target *UnitInstance) {
	damage := CalculateDamage(attacker, target)
	if ConsumeConceal(target) {
		util.LogGameInfo(fmt.Sprintf("[RulesExecutor] %s(%d) hit negated by conceal", target.Name, target.UnitID()))
		e.emit(VisualUnitAttacked{AttackerID: attacker.UnitID(), TargetID: target.UnitID(), Damage: 0, Negated: true})
		return
	}
	lethal := target.ApplyDamage(damage)
	e.emit(VisualUnitAttacked{AttackerID: attacker.UnitID(), TargetID: target.UnitID(), Damage: damage, Lethal: lethal})
	if lethal {
		util.LogGameInfo(fmt.Sprintf("[RulesExecutor] %s(%d) killed %s(%d)", attacker.Name, attacker.UnitID(), target.Name, target.UnitID()))
		if over, winner := CheckWinCondition(e.state); over {
			e.state.IsGameOver = true
			e.state.Winner = winner
		}
	}
}

func (e *RulesExecutor) ExecuteHeal(cmd Command, onComplete func()) {
	healer := e.state.CurrentUnit()
	target, exists := e.state.GetUnit(cmd.TargetUnitID)
	if e.state.IsGameOver || healer == nil || !exists || !target.IsActive() {
		onComplete()
		return
	}
	healed := ApplyHealing(healer, target)
	e.spendAction(healer)
	e.emit(VisualUnitHealed{HealerID: healer.UnitID(), TargetID: target.UnitID(), Amount: healed})
	onComplete()
}

func (e *RulesExecutor) ExecuteConceal(cmd Command, onComplete func()) {
	unit := e.state.CurrentUnit()
	if e.state.IsGameOver || unit == nil {
		onComplete()
		return
	}
	ActivateConceal(unit)
	e.spendAction(unit)
	e.emit(VisualAbilityUsed{UnitID: unit.UnitID(), Ability: string(CommandConceal)})
	onComplete()
}

func (e *RulesExecutor) ExecuteCover(cmd Command, onComplete func()) {
	unit := e.state.CurrentUnit()
	if e.state.IsGameOver || unit == nil {
		onComplete()
		return
	}
	ActivateCover(e.state, unit)
	e.spendAction(unit)
	e.emit(VisualAbilityUsed{UnitID: unit.UnitID(), Ability: string(CommandCover)})
	onComplete()
}

// CheckReactions fires a covering enemy's interrupt when the active unit
// ended up on a threatened tile. The watcher spends its cover on the shot.
func (e *RulesExecutor) CheckReactions(onReactionComplete func()) bool {
	if e.state.IsGameOver {
		return false
	}
	unit := e.state.CurrentUnit()
	if unit == nil || !unit.IsActive() {
		return false
	}
	watcher := GetEnemyCoveringTile(e.state, unit.Position.X, unit.Position.Z, unit)
	if watcher == nil {
		return false
	}
	util.LogGameInfo(fmt.Sprintf("[RulesExecutor] Reaction: %s(%d) fires on %s(%d)", watcher.Name, watcher.UnitID(), unit.Name, unit.UnitID()))
	watcher.IsCovering = false
	watcher.CoveredTiles = make(map[string]bool)
	e.emit(VisualReaction{WatcherID: watcher.UnitID(), TargetID: unit.UnitID()})
	e.resolveHit(watcher, unit)
	onReactionComplete()
	return true
}

func (e *RulesExecutor) OnQueueComplete() {
	if e.queueDone != nil {
		e.queueDone()
	}
}
