package game

// CommandExecutor is implemented by the presentation layer. Each execute
// method receives a continuation that must eventually fire exactly once; the
// driver never proceeds before it does. CheckReactions runs after every
// completed command: returning true interrupts the rest of the turn's queue
// and OnQueueComplete only fires once the reaction's own completion callback
// runs.
type CommandExecutor interface {
	ExecuteMove(cmd Command, onComplete func())
	ExecuteAttack(cmd Command, onComplete func())
	ExecuteHeal(cmd Command, onComplete func())
	ExecuteConceal(cmd Command, onComplete func())
	ExecuteCover(cmd Command, onComplete func())
	CheckReactions(onReactionComplete func()) bool
	OnQueueComplete()
}

// ProcessCommandQueue snapshots and clears the queue, then drives the
// executor through each command in FIFO order. A triggered reaction discards
// the remaining commands for this turn.
func ProcessCommandQueue(queue *CommandQueue, executor CommandExecutor) {
	pending := queue.Snapshot()
	queue.Clear()

	index := 0
	var runNext func()
	runNext = func() {
		if index >= len(pending) {
			executor.OnQueueComplete()
			return
		}
		cmd := pending[index]
		index++
		dispatchCommand(executor, cmd, func() {
			if executor.CheckReactions(executor.OnQueueComplete) {
				// reaction interrupts the rest of the turn
				return
			}
			runNext()
		})
	}
	runNext()
}

func dispatchCommand(executor CommandExecutor, cmd Command, onComplete func()) {
	switch cmd.Type {
	case CommandMove:
		executor.ExecuteMove(cmd, onComplete)
	case CommandAttack:
		executor.ExecuteAttack(cmd, onComplete)
	case CommandHeal:
		executor.ExecuteHeal(cmd, onComplete)
	case CommandConceal:
		executor.ExecuteConceal(cmd, onComplete)
	case CommandCover:
		executor.ExecuteCover(cmd, onComplete)
	default:
		// skip unknown commands, nothing to execute
		onComplete()
	}
}

// IsValidMoveCommand is a cheap bounds check only. Full legality, range and
// occupancy included, is re-validated by whatever enqueues the command.
func IsValidMoveCommand(state *BattleState, cmd Command) bool {
	return cmd.Type == CommandMove && state.Contains(cmd.TargetX, cmd.TargetZ)
}
