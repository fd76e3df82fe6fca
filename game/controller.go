package game

// Controller is one decision source for a team. Human, AI and network
// controllers differ only in how they populate the command stream; the rules
// they drive are identical, which is what keeps them interchangeable.
type Controller interface {
	OnTurnStart(ctx ControllerContext)
	OnTurnEnd()
	OnGameEnd(winner string)
	Dispose()
}

// ControllerContext is the entire read/write surface a controller gets. No
// other mutation path into the battle state is sanctioned.
type ControllerContext interface {
	State() *BattleState
	ActiveUnit() *UnitInstance
	// EffectivePosition is the active unit's tile after the last queued
	// move, which is what all pre-execution targeting checks run against.
	EffectivePosition() GridPos
	// IssueCommand validates and enqueues. Rejection returns false, never
	// panics: callers try something else or give up.
	IssueCommand(cmd Command) bool
	ExecuteTurn()
	UndoLastCommand() bool
	ActionsRemaining() int
}

// ControllerManager routes turn lifecycle events to the controller of the
// team whose turn it is.
type ControllerManager struct {
	controllers map[string]Controller
}

func NewControllerManager() *ControllerManager {
	return &ControllerManager{controllers: make(map[string]Controller)}
}

func (m *ControllerManager) Register(team string, controller Controller) {
	m.controllers[team] = controller
}

func (m *ControllerManager) Get(team string) Controller {
	return m.controllers[team]
}

func (m *ControllerManager) NotifyTurnStart(team string, ctx ControllerContext) {
	if controller, ok := m.controllers[team]; ok {
		controller.OnTurnStart(ctx)
	}
}

func (m *ControllerManager) NotifyTurnEnd(team string) {
	if controller, ok := m.controllers[team]; ok {
		controller.OnTurnEnd()
	}
}

func (m *ControllerManager) NotifyGameEnd(winner string) {
	for _, controller := range m.controllers {
		controller.OnGameEnd(winner)
	}
}

func (m *ControllerManager) Dispose() {
	for _, controller := range m.controllers {
		controller.Dispose()
	}
}

// IsAI tells the execution layer whether to skip input affordances for a team.
func (m *ControllerManager) IsAI(team string) bool {
	_, ok := m.controllers[team].(*AIController)
	return ok
}

func (m *ControllerManager) IsHuman(team string) bool {
	_, ok := m.controllers[team].(*HumanController)
	return ok
}
