package game

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type CommandType string

const (
	CommandMove    CommandType = "move"
	CommandAttack  CommandType = "attack"
	CommandHeal    CommandType = "heal"
	CommandConceal CommandType = "conceal"
	CommandCover   CommandType = "cover"
)

// Command is one immutable, serializable player action. Targets are
// referenced by unit ID only, so a command can be replayed against a state
// snapshot on a remote peer.
type Command struct {
	Type CommandType

	// move
	TargetX int
	TargetZ int

	// attack / heal
	TargetUnitID uint64
}

func NewMoveCommand(targetX, targetZ int) Command {
	return Command{Type: CommandMove, TargetX: targetX, TargetZ: targetZ}
}

func NewAttackCommand(targetUnitID uint64) Command {
	return Command{Type: CommandAttack, TargetUnitID: targetUnitID}
}

func NewHealCommand(targetUnitID uint64) Command {
	return Command{Type: CommandHeal, TargetUnitID: targetUnitID}
}

func NewConcealCommand() Command {
	return Command{Type: CommandConceal}
}

func NewCoverCommand() Command {
	return Command{Type: CommandCover}
}

type moveCommandJSON struct {
	Type    CommandType `json:"type"`
	TargetX int         `json:"targetX"`
	TargetZ int         `json:"targetZ"`
}

type targetedCommandJSON struct {
	Type         CommandType `json:"type"`
	TargetUnitID uint64      `json:"targetUnitId"`
}

type flagCommandJSON struct {
	Type CommandType `json:"type"`
}

// MarshalJSON emits exactly the fields the variant carries, so a decoded
// command re-encodes to byte-identical output.
func (c Command) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case CommandMove:
		return json.Marshal(moveCommandJSON{Type: c.Type, TargetX: c.TargetX, TargetZ: c.TargetZ})
	case CommandAttack, CommandHeal:
		return json.Marshal(targetedCommandJSON{Type: c.Type, TargetUnitID: c.TargetUnitID})
	case CommandConceal, CommandCover:
		return json.Marshal(flagCommandJSON{Type: c.Type})
	}
	return nil, errors.Errorf("unknown command type %q", c.Type)
}

func (c *Command) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type         CommandType `json:"type"`
		TargetX      int         `json:"targetX"`
		TargetZ      int         `json:"targetZ"`
		TargetUnitID uint64      `json:"targetUnitId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding command")
	}
	switch raw.Type {
	case CommandMove:
		*c = NewMoveCommand(raw.TargetX, raw.TargetZ)
	case CommandAttack:
		*c = NewAttackCommand(raw.TargetUnitID)
	case CommandHeal:
		*c = NewHealCommand(raw.TargetUnitID)
	case CommandConceal:
		*c = NewConcealCommand()
	case CommandCover:
		*c = NewCoverCommand()
	default:
		return errors.Errorf("unknown command type %q", raw.Type)
	}
	return nil
}

// MoveTarget is the destination of a move command.
func (c Command) MoveTarget() GridPos {
	return GridPos{X: c.TargetX, Z: c.TargetZ}
}
