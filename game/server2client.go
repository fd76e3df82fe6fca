package game

type ActionResponse struct {
	Success bool
	Message string
}

func (a ActionResponse) MessageType() string {
	return "ActionResponse"
}

type GameStartedMessage struct {
	GameID        string
	OwnID         uint64
	OwnTeam       string
	PlayerNameMap map[uint64]string
	PlayerTeamMap map[uint64]string
	State         *BattleState
}

func (g GameStartedMessage) MessageType() string {
	return "GameStarted"
}

type NextTurnMessage struct {
	UnitID           uint64
	Team             string
	YourTurn         bool
	ActionsRemaining int
	State            *BattleState
}

func (n NextTurnMessage) MessageType() string {
	return "NextTurn"
}

type VisualUnitMoved struct {
	UnitID      uint64
	Path        []GridPos
	EndPosition GridPos
}

func (v VisualUnitMoved) MessageType() string {
	return "UnitMoved"
}

type VisualUnitAttacked struct {
	AttackerID uint64
	TargetID   uint64
	Damage     int
	Lethal     bool
	Negated    bool
}

func (v VisualUnitAttacked) MessageType() string {
	return "UnitAttacked"
}

type VisualUnitHealed struct {
	HealerID uint64
	TargetID uint64
	Amount   int
}

func (v VisualUnitHealed) MessageType() string {
	return "UnitHealed"
}

type VisualAbilityUsed struct {
	UnitID  uint64
	Ability string
}

func (v VisualAbilityUsed) MessageType() string {
	return "AbilityUsed"
}

type VisualReaction struct {
	WatcherID uint64
	TargetID  uint64
}

func (v VisualReaction) MessageType() string {
	return "Reaction"
}

type GameOverMessage struct {
	Winner string
	YouWon bool
	Draw   bool
}

func (g GameOverMessage) MessageType() string {
	return "GameOver"
}
