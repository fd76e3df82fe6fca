package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingExecutor logs the dispatch order and can trigger one reaction
// after a chosen command type.
type recordingExecutor struct {
	calls          []string
	reactAfter     CommandType
	reacted        bool
	queueCompleted int
}

func (e *recordingExecutor) record(cmd Command, onComplete func()) {
	e.calls = append(e.calls, string(cmd.Type))
	onComplete()
}

func (e *recordingExecutor) ExecuteMove(cmd Command, onComplete func())    { e.record(cmd, onComplete) }
func (e *recordingExecutor) ExecuteAttack(cmd Command, onComplete func())  { e.record(cmd, onComplete) }
func (e *recordingExecutor) ExecuteHeal(cmd Command, onComplete func())    { e.record(cmd, onComplete) }
func (e *recordingExecutor) ExecuteConceal(cmd Command, onComplete func()) { e.record(cmd, onComplete) }
func (e *recordingExecutor) ExecuteCover(cmd Command, onComplete func())   { e.record(cmd, onComplete) }

func (e *recordingExecutor) CheckReactions(onReactionComplete func()) bool {
	if e.reacted || e.reactAfter == "" {
		return false
	}
	if len(e.calls) == 0 || e.calls[len(e.calls)-1] != string(e.reactAfter) {
		return false
	}
	e.reacted = true
	e.calls = append(e.calls, "reaction")
	onReactionComplete()
	return true
}

func (e *recordingExecutor) OnQueueComplete() {
	e.queueCompleted++
}

func TestProcessCommandQueueRunsInOrder(t *testing.T) {
	queue := NewCommandQueue()
	queue.Enqueue(NewMoveCommand(1, 1))
	queue.Enqueue(NewAttackCommand(2))
	queue.Enqueue(NewHealCommand(0))

	executor := &recordingExecutor{}
	ProcessCommandQueue(queue, executor)

	assert.Equal(t, []string{"move", "attack", "heal"}, executor.calls)
	assert.Equal(t, 1, executor.queueCompleted)
	assert.True(t, queue.IsEmpty())
}

func TestProcessCommandQueueReactionInterrupts(t *testing.T) {
	queue := NewCommandQueue()
	queue.Enqueue(NewMoveCommand(1, 1))
	queue.Enqueue(NewAttackCommand(2))
	queue.Enqueue(NewHealCommand(0))

	executor := &recordingExecutor{reactAfter: CommandMove}
	ProcessCommandQueue(queue, executor)

	// the attack and heal are discarded, completion still fires exactly once
	assert.Equal(t, []string{"move", "reaction"}, executor.calls)
	assert.Equal(t, 1, executor.queueCompleted)
	assert.True(t, queue.IsEmpty())
}

func TestProcessCommandQueueEmpty(t *testing.T) {
	executor := &recordingExecutor{}
	ProcessCommandQueue(NewCommandQueue(), executor)
	assert.Empty(t, executor.calls)
	assert.Equal(t, 1, executor.queueCompleted)
}

func TestIsValidMoveCommand(t *testing.T) {
	state := openState(5)
	require.True(t, IsValidMoveCommand(state, NewMoveCommand(4, 4)))
	assert.False(t, IsValidMoveCommand(state, NewMoveCommand(5, 0)))
	assert.False(t, IsValidMoveCommand(state, NewMoveCommand(-1, 2)))
	assert.False(t, IsValidMoveCommand(state, NewAttackCommand(1)))
}
