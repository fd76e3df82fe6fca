package game

// HumanController stores the turn context and does nothing else; an external
// input layer issues commands and ends the turn directly against it.
type HumanController struct {
	ctx ControllerContext
}

func NewHumanController() *HumanController {
	return &HumanController{}
}

func (c *HumanController) OnTurnStart(ctx ControllerContext) {
	c.ctx = ctx
}

func (c *HumanController) OnTurnEnd() {
	c.ctx = nil
}

func (c *HumanController) OnGameEnd(winner string) {
	c.ctx = nil
}

func (c *HumanController) Dispose() {
	c.ctx = nil
}

// Context exposes the stored turn context to the input layer. Nil outside the
// team's turn.
func (c *HumanController) Context() ControllerContext {
	return c.ctx
}
