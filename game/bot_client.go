package game

import (
	"fmt"

	"github.com/memmaker/skirmish/engine/util"
)

// BotClient is a headless scripted player. It connects to a battle server,
// creates or joins a match and plays its side with the AI controller against
// a local replica of the battle state taken from the server's turn
// broadcasts. Commands the AI queues locally are validated against the
// replica first and then forwarded over the wire one by one.
type BotClient struct {
	connection *ServerConnection
	ai         *AIController
	name       string

	state   *BattleState
	ownTeam string
	gameID  string

	done chan GameOverMessage
}

func NewBotClient(endpoint, name string, difficulty AIDifficulty) (*BotClient, error) {
	bot := &BotClient{
		name: name,
		ai:   NewAIController(difficulty, 0, 0, int64(len(name))),
		done: make(chan GameOverMessage, 1),
	}
	connection, err := NewTCPConnectionWithHandler(endpoint, bot.handleMessage)
	if err != nil {
		return nil, err
	}
	bot.connection = connection
	if err := connection.Login(name); err != nil {
		return nil, err
	}
	return bot, nil
}

func (b *BotClient) CreateGame(gameID string, gridSize int, seed int64, aiOpponent AIDifficulty) error {
	return b.connection.CreateGame(gameID, gridSize, seed, aiOpponent)
}

func (b *BotClient) JoinGame(gameID string) error {
	return b.connection.JoinGame(gameID)
}

// WaitForGameOver blocks until the server reports the match result.
func (b *BotClient) WaitForGameOver() GameOverMessage {
	return <-b.done
}

func (b *BotClient) Close() error {
	return b.connection.Close()
}

func (b *BotClient) handleMessage(msg StringMessage) {
	switch msg.MessageType {
	case "ActionResponse":
		var response ActionResponse
		if util.FromJson(msg.Message, &response) && !response.Success {
			util.LogNetworkWarning(fmt.Sprintf("[BotClient] %s: server rejected: %s", b.name, response.Message))
		}
	case "CreateGameResponse":
		var response ActionResponse
		if util.FromJson(msg.Message, &response) && response.Success {
			b.gameID = response.Message
		}
	case "GameStarted":
		var started GameStartedMessage
		if util.FromJson(msg.Message, &started) {
			b.onGameStarted(started)
		}
	case "NextTurn":
		var nextTurn NextTurnMessage
		if util.FromJson(msg.Message, &nextTurn) {
			b.onNextTurn(nextTurn)
		}
	case "GameOver":
		var gameOver GameOverMessage
		if util.FromJson(msg.Message, &gameOver) {
			b.done <- gameOver
		}
	}
}

func (b *BotClient) onGameStarted(msg GameStartedMessage) {
	b.gameID = msg.GameID
	b.ownTeam = msg.OwnTeam
	b.state = msg.State
	util.LogAIInfo(fmt.Sprintf("[BotClient] %s joined game %s as %s", b.name, b.gameID, b.ownTeam))
}

func (b *BotClient) onNextTurn(msg NextTurnMessage) {
	// the broadcast state is authoritative, local predictions are discarded
	b.state = msg.State
	if !msg.YourTurn {
		return
	}
	b.takeTurn()
}

// takeTurn lets the AI fill a local queue against the replica, then replays
// the queued commands over the wire and ends the turn.
func (b *BotClient) takeTurn() {
	queue := NewCommandQueue()
	ctx := NewBattleContext(b.state, queue, func() {
		for _, cmd := range queue.Snapshot() {
			util.MustSend(b.connection.IssueCommand(cmd))
		}
		util.MustSend(b.connection.ExecuteTurn())
	})
	b.ai.OnTurnStart(ctx)
}
