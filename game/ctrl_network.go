package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/util"
)

// NetworkController bridges a remote peer into the local turn loop. Remote
// commands arrive asynchronously but are applied synchronously, in receipt
// order, against the stored context. The outbound direction goes through the
// injected send callbacks; transport framing is not this layer's business.
type NetworkController struct {
	ctx         ControllerContext
	send        func(cmd Command)
	sendExecute func()
}

func NewNetworkController(send func(cmd Command), sendExecute func()) *NetworkController {
	return &NetworkController{send: send, sendExecute: sendExecute}
}

func (c *NetworkController) OnTurnStart(ctx ControllerContext) {
	c.ctx = ctx
}

func (c *NetworkController) OnTurnEnd() {
	c.ctx = nil
}

func (c *NetworkController) OnGameEnd(winner string) {
	c.ctx = nil
}

func (c *NetworkController) Dispose() {
	c.ctx = nil
}

// ReceiveCommand applies a remote command. Receiving one while no turn is
// open is a protocol hiccup, not a crash: log and reject.
func (c *NetworkController) ReceiveCommand(cmd Command) bool {
	if c.ctx == nil {
		util.LogNetworkWarning(fmt.Sprintf("[NetworkController] Dropping %s command, no active turn context", cmd.Type))
		return false
	}
	return c.ctx.IssueCommand(cmd)
}

// ReceiveUndo forwards a remote undo of the most recent unexecuted command.
func (c *NetworkController) ReceiveUndo() bool {
	if c.ctx == nil {
		util.LogNetworkWarning("[NetworkController] Dropping undo, no active turn context")
		return false
	}
	return c.ctx.UndoLastCommand()
}

func (c *NetworkController) ReceiveExecute() {
	if c.ctx == nil {
		util.LogNetworkWarning("[NetworkController] Dropping execute, no active turn context")
		return
	}
	c.ctx.ExecuteTurn()
}

// SendCommand forwards a locally issued command to the remote peer.
func (c *NetworkController) SendCommand(cmd Command) {
	if c.send != nil {
		c.send(cmd)
	}
}

func (c *NetworkController) SendExecute() {
	if c.sendExecute != nil {
		c.sendExecute()
	}
}
