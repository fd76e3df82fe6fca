package game

type LoginMessage struct {
	Username string
}

type CreateGameMessage struct {
	GameIdentifier string
	GridSize       int
	Seed           int64
	// AIOpponent, when set, fills the second slot with a scripted
	// opponent of the given difficulty instead of waiting for a peer.
	AIOpponent AIDifficulty
}

type JoinGameMessage struct {
	GameID string
}

type IssueCommandMessage struct {
	GameCommand Command
}

type ExecuteTurnMessage struct {
}

type UndoCommandMessage struct {
}
