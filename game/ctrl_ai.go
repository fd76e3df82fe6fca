package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/memmaker/skirmish/engine/util"
)

type AIDifficulty string

const (
	AIEasy   AIDifficulty = "easy"
	AINormal AIDifficulty = "normal"
	AIHard   AIDifficulty = "hard"
)

// AIController plays a turn by a fixed priority: attack, heal, advance on the
// nearest enemy, then toggle its innate ability. The artificial delays are
// cooperative timers so nothing else in the process stalls while the AI
// "thinks". Zero delays run synchronously, which is what the tests use.
type AIController struct {
	difficulty AIDifficulty
	thinkDelay time.Duration
	endDelay   time.Duration
	rng        *rand.Rand
	timer      *time.Timer
}

func NewAIController(difficulty AIDifficulty, thinkDelay, endDelay time.Duration, seed int64) *AIController {
	return &AIController{
		difficulty: difficulty,
		thinkDelay: thinkDelay,
		endDelay:   endDelay,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (c *AIController) OnTurnStart(ctx ControllerContext) {
	if c.thinkDelay <= 0 {
		c.takeTurn(ctx)
		return
	}
	c.timer = time.AfterFunc(c.thinkDelay, func() {
		c.takeTurn(ctx)
	})
}

func (c *AIController) takeTurn(ctx ControllerContext) {
	for c.selectAction(ctx) {
	}
	if c.endDelay <= 0 {
		ctx.ExecuteTurn()
		return
	}
	c.timer = time.AfterFunc(c.endDelay, ctx.ExecuteTurn)
}

// selectAction queues at most one command and reports whether the loop should
// continue. A rejected command ends the turn's decision making.
func (c *AIController) selectAction(ctx ControllerContext) bool {
	unit := ctx.ActiveUnit()
	if unit == nil || ctx.ActionsRemaining() <= 0 {
		return false
	}
	state := ctx.State()
	position := ctx.EffectivePosition()

	if enemies := GetAttackableEnemies(state, unit, position); len(enemies) > 0 {
		target := c.pickAttackTarget(enemies)
		util.LogAIDebug(fmt.Sprintf("[AIController] %s(%d) attacks %s(%d)", unit.Name, unit.UnitID(), target.Name, target.UnitID()))
		return ctx.IssueCommand(NewAttackCommand(target.UnitID()))
	}

	if allies := GetHealableAllies(state, unit, position); len(allies) > 0 {
		target := pickMostWounded(allies)
		util.LogAIDebug(fmt.Sprintf("[AIController] %s(%d) heals %s(%d)", unit.Name, unit.UnitID(), target.Name, target.UnitID()))
		return ctx.IssueCommand(NewHealCommand(target.UnitID()))
	}

	if moveTarget, found := c.pickAdvance(state, unit, position); found {
		util.LogAIDebug(fmt.Sprintf("[AIController] %s(%d) advances to %s", unit.Name, unit.UnitID(), moveTarget.ToString()))
		return ctx.IssueCommand(NewMoveCommand(moveTarget.X, moveTarget.Z))
	}

	if innate := unit.InnateCommand(); innate != nil && !unit.IsCovering && !unit.IsConcealed {
		return ctx.IssueCommand(*innate)
	}
	return false
}

func (c *AIController) pickAttackTarget(enemies []*UnitInstance) *UnitInstance {
	if c.difficulty == AIEasy {
		return enemies[c.rng.Intn(len(enemies))]
	}
	best := enemies[0]
	for _, enemy := range enemies[1:] {
		if enemy.Health < best.Health || (enemy.Health == best.Health && enemy.UnitID() < best.UnitID()) {
			best = enemy
		}
	}
	return best
}

func pickMostWounded(allies []*UnitInstance) *UnitInstance {
	best := allies[0]
	bestFraction := float64(best.Health) / float64(best.MaxHealth)
	for _, ally := range allies[1:] {
		fraction := float64(ally.Health) / float64(ally.MaxHealth)
		if fraction < bestFraction || (fraction == bestFraction && ally.UnitID() < best.UnitID()) {
			best = ally
			bestFraction = fraction
		}
	}
	return best
}

// pickAdvance looks for the reachable tile that minimizes the Manhattan
// distance to the closest enemy. A move that would not strictly close the
// current distance is not worth an action.
func (c *AIController) pickAdvance(state *BattleState, unit *UnitInstance, position GridPos) (GridPos, bool) {
	enemies := state.LivingEnemiesOf(unit)
	if len(enemies) == 0 {
		return GridPos{}, false
	}
	closestEnemyDistance := func(from GridPos) int {
		best := -1
		for _, enemy := range enemies {
			d := ManhattanDistance(from, enemy.Position)
			if best < 0 || d < best {
				best = d
			}
		}
		return best
	}
	currentDistance := closestEnemyDistance(position)

	bestDistance := currentDistance
	var bestTile GridPos
	found := false
	for _, tile := range GetValidMoveTiles(state, unit, position) {
		d := closestEnemyDistance(tile)
		if d < bestDistance || (found && d == bestDistance && lessPos(tile, bestTile)) {
			bestDistance = d
			bestTile = tile
			found = true
		}
	}
	return bestTile, found
}

func lessPos(a, b GridPos) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Z < b.Z
}

func (c *AIController) OnTurnEnd() {
}

func (c *AIController) OnGameEnd(winner string) {
	c.stopTimer()
}

func (c *AIController) Dispose() {
	c.stopTimer()
}

func (c *AIController) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
