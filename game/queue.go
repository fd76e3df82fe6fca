package game

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// CommandQueue holds the commands queued for the turn in progress. The driver
// dequeues from the front, undo pops from the back.
type CommandQueue struct {
	commands []Command
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{commands: make([]Command, 0)}
}

func (q *CommandQueue) Enqueue(cmd Command) {
	q.commands = append(q.commands, cmd)
}

// Dequeue removes and returns the oldest queued command.
func (q *CommandQueue) Dequeue() (Command, bool) {
	if len(q.commands) == 0 {
		return Command{}, false
	}
	cmd := q.commands[0]
	q.commands = q.commands[1:]
	return cmd, true
}

// Pop removes and returns the most recently queued command, which is the unit
// of undo for unexecuted commands.
func (q *CommandQueue) Pop() (Command, bool) {
	if len(q.commands) == 0 {
		return Command{}, false
	}
	cmd := q.commands[len(q.commands)-1]
	q.commands = q.commands[:len(q.commands)-1]
	return cmd, true
}

func (q *CommandQueue) Peek() (Command, bool) {
	if len(q.commands) == 0 {
		return Command{}, false
	}
	return q.commands[0], true
}

func (q *CommandQueue) PeekLast() (Command, bool) {
	if len(q.commands) == 0 {
		return Command{}, false
	}
	return q.commands[len(q.commands)-1], true
}

func (q *CommandQueue) Len() int {
	return len(q.commands)
}

func (q *CommandQueue) IsEmpty() bool {
	return len(q.commands) == 0
}

func (q *CommandQueue) Clear() {
	q.commands = q.commands[:0]
}

// Snapshot returns a copy of the queued commands in order.
func (q *CommandQueue) Snapshot() []Command {
	snapshot := make([]Command, len(q.commands))
	copy(snapshot, q.commands)
	return snapshot
}

func (q *CommandQueue) HasCommandOfType(commandType CommandType) bool {
	for _, cmd := range q.commands {
		if cmd.Type == commandType {
			return true
		}
	}
	return false
}

// GetLastMoveCommand returns the last queued move, which determines the
// unit's effective position for targeting checks made before execution.
func (q *CommandQueue) GetLastMoveCommand() (Command, bool) {
	for i := len(q.commands) - 1; i >= 0; i-- {
		if q.commands[i].Type == CommandMove {
			return q.commands[i], true
		}
	}
	return Command{}, false
}

// ToJSON serializes the queue for network replication. FromJson of the output
// re-serializes byte-identically.
func (q *CommandQueue) ToJSON() ([]byte, error) {
	data, err := json.Marshal(q.commands)
	if err != nil {
		return nil, errors.Wrap(err, "encoding command queue")
	}
	return data, nil
}

func CommandQueueFromJSON(data []byte) (*CommandQueue, error) {
	var commands []Command
	if err := json.Unmarshal(data, &commands); err != nil {
		return nil, errors.Wrap(err, "decoding command queue")
	}
	if commands == nil {
		commands = make([]Command, 0)
	}
	return &CommandQueue{commands: commands}, nil
}
