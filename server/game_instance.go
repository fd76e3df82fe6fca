package server

import (
	"fmt"
	"sync"

	"github.com/memmaker/skirmish/engine/util"
	"github.com/memmaker/skirmish/game"
)

// GameInstance hosts one authoritative match on the server. Each remote
// player is bridged in through a NetworkController; an optional scripted
// opponent fills the second slot with a zero-delay AI so its whole turn
// resolves synchronously inside the turn transition that scheduled it.
type GameInstance struct {
	id            string
	state         *game.BattleState
	battle        *game.Battle
	controllers   *game.ControllerManager
	network       map[string]*game.NetworkController
	players       []uint64
	playerTeams   map[uint64]string
	playerNames   map[uint64]string
	playersNeeded int
	aiDifficulty  game.AIDifficulty
	started       bool
	mb            *game.MessageBuffer

	// one match, one open turn: every inbound mutation funnels through here
	mu sync.Mutex
}

func NewGameInstance(gameID string, gridSize int, seed int64) *GameInstance {
	util.LogGameInfo(fmt.Sprintf("[GameInstance] '%s' created", gameID))
	return &GameInstance{
		id:            gameID,
		state:         game.SetupBattleState(gridSize, seed, nil),
		controllers:   game.NewControllerManager(),
		network:       make(map[string]*game.NetworkController),
		players:       make([]uint64, 0),
		playerTeams:   make(map[uint64]string),
		playerNames:   make(map[uint64]string),
		playersNeeded: 2,
	}
}

func (g *GameInstance) GetID() string {
	return g.id
}

func (g *GameInstance) AddPlayer(userID uint64, name string) string {
	team := game.TeamPlayerOne
	if len(g.players) > 0 {
		team = game.TeamPlayerTwo
	}
	g.players = append(g.players, userID)
	g.playerTeams[userID] = team
	g.playerNames[userID] = name
	util.LogGameInfo(fmt.Sprintf("[GameInstance] Player %d joins %s as %s", userID, g.id, team))
	return team
}

// SetAIOpponent reserves the second slot for a scripted opponent.
func (g *GameInstance) SetAIOpponent(difficulty game.AIDifficulty) {
	g.aiDifficulty = difficulty
	g.playersNeeded = 1
}

func (g *GameInstance) IsReady() bool {
	return !g.started && len(g.players) == g.playersNeeded
}

func (g *GameInstance) HasStarted() bool {
	return g.started
}

func (g *GameInstance) IsFull() bool {
	return len(g.players) >= g.playersNeeded
}

func (g *GameInstance) GetPlayerIDs() []uint64 {
	return g.players
}

func (g *GameInstance) PlayerTeam(userID uint64) string {
	return g.playerTeams[userID]
}

func (g *GameInstance) PlayerNames() map[uint64]string {
	result := make(map[uint64]string)
	for id, name := range g.playerNames {
		result[id] = name
	}
	return result
}

func (g *GameInstance) PlayerTeams() map[uint64]string {
	result := make(map[uint64]string)
	for id, team := range g.playerTeams {
		result[id] = team
	}
	return result
}

func (g *GameInstance) State() *game.BattleState {
	return g.state
}

// Start wires the controllers and opens the first turn. Messages produced
// during the cascade are buffered and flushed before Start returns.
func (g *GameInstance) Start(writer func(userID uint64, messageType, response []byte)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.started = true
	g.mb = game.NewMessageBuffer(g.players, writer)

	for _, userID := range g.players {
		team := g.playerTeams[userID]
		controller := game.NewNetworkController(nil, nil)
		g.network[team] = controller
		g.controllers.Register(team, &announcingController{inner: controller, instance: g, team: team})
	}
	if g.aiDifficulty != "" {
		ai := game.NewAIController(g.aiDifficulty, 0, 0, int64(len(g.players)))
		g.controllers.Register(game.TeamPlayerTwo, &announcingController{inner: ai, instance: g, team: game.TeamPlayerTwo})
	}

	g.battle = game.NewBattle(g.state, g.controllers)
	g.battle.Executor().OnEvent = func(msg game.Message) {
		g.mb.AddMessageForAll(msg)
	}
	g.battle.Start()
	g.mb.SendAll()
}

// announcingController relays the turn lifecycle to the connected players
// before handing control to the wrapped decision source.
type announcingController struct {
	inner    game.Controller
	instance *GameInstance
	team     string
}

func (c *announcingController) OnTurnStart(ctx game.ControllerContext) {
	c.instance.announceTurn(ctx)
	c.inner.OnTurnStart(ctx)
}

func (c *announcingController) OnTurnEnd() {
	c.inner.OnTurnEnd()
}

func (c *announcingController) OnGameEnd(winner string) {
	c.instance.announceGameOver(winner)
	c.inner.OnGameEnd(winner)
}

func (c *announcingController) Dispose() {
	c.inner.Dispose()
}

func (g *GameInstance) announceTurn(ctx game.ControllerContext) {
	unit := ctx.ActiveUnit()
	if unit == nil {
		return
	}
	for _, userID := range g.players {
		g.mb.AddMessageFor(userID, game.NextTurnMessage{
			UnitID:           unit.UnitID(),
			Team:             unit.Team,
			YourTurn:         g.playerTeams[userID] == unit.Team,
			ActionsRemaining: ctx.ActionsRemaining(),
			State:            g.state,
		})
	}
}

func (g *GameInstance) announceGameOver(winner string) {
	for _, userID := range g.players {
		g.mb.AddMessageFor(userID, game.GameOverMessage{
			Winner: winner,
			YouWon: winner != "" && g.playerTeams[userID] == winner,
			Draw:   winner == "",
		})
	}
}

// ReceiveCommand routes a remote command into the team's network controller
// and reports acceptance with a reason usable in the response.
func (g *GameInstance) ReceiveCommand(userID uint64, cmd game.Command) (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started {
		return false, "Game has not started"
	}
	controller, ok := g.network[g.playerTeams[userID]]
	if !ok {
		return false, "No controller for your team"
	}
	if !g.isPlayersTurn(userID) {
		return false, "It is not your turn"
	}
	if !controller.ReceiveCommand(cmd) {
		return false, fmt.Sprintf("Command %s rejected", cmd.Type)
	}
	return true, "Command queued"
}

// ReceiveExecute drains the player's queued turn. All cascaded effects,
// AI opponent turns included, resolve before the buffered messages flush.
func (g *GameInstance) ReceiveExecute(userID uint64) (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started {
		return false, "Game has not started"
	}
	controller, ok := g.network[g.playerTeams[userID]]
	if !ok {
		return false, "No controller for your team"
	}
	if !g.isPlayersTurn(userID) {
		return false, "It is not your turn"
	}
	controller.ReceiveExecute()
	g.mb.SendAll()
	return true, "Turn executed"
}

func (g *GameInstance) ReceiveUndo(userID uint64) (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started {
		return false, "Game has not started"
	}
	controller, ok := g.network[g.playerTeams[userID]]
	if !ok {
		return false, "No controller for your team"
	}
	if !g.isPlayersTurn(userID) {
		return false, "It is not your turn"
	}
	if !controller.ReceiveUndo() {
		return false, "Nothing to undo"
	}
	return true, "Command undone"
}

func (g *GameInstance) isPlayersTurn(userID uint64) bool {
	unit := g.state.CurrentUnit()
	return unit != nil && unit.Team == g.playerTeams[userID]
}

func (g *GameInstance) IsGameOver() bool {
	return g.state.IsGameOver
}

func (g *GameInstance) FlushMessages() {
	if g.mb != nil {
		g.mb.SendAll()
	}
}

func (g *GameInstance) Dispose() {
	g.controllers.Dispose()
}
