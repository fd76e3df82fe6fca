package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/memmaker/skirmish/engine/util"
	"github.com/memmaker/skirmish/game"
	"github.com/pkg/errors"
)

type BattleServer struct {
	config Config

	// mu guards the lobby maps and every UserConnection.activeGame. It is
	// never held while calling into a GameInstance, which has its own lock.
	mu               sync.Mutex
	connectedClients map[uint64]*UserConnection
	runningGames     map[string]*GameInstance
}

func NewBattleServer(config Config) *BattleServer {
	return &BattleServer{
		config:           config,
		connectedClients: make(map[uint64]*UserConnection), // client id -> client
		runningGames:     make(map[string]*GameInstance),   // game id -> game
	}
}

type UserConnection struct {
	raw        net.Conn
	id         uint64
	name       string
	activeGame string

	// one message frame at a time, turn fan-out and direct responses share
	// the connection
	writeMu sync.Mutex
}

func (b *BattleServer) ListenTCP() error {
	clientID := uint64(0)
	listener, err := net.Listen("tcp", b.config.ListenAddr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", b.config.ListenAddr)
	}
	defer listener.Close()
	util.LogNetworkInfo(fmt.Sprintf("[BattleServer] Server started on %s", b.config.ListenAddr))
	for {
		con, err := listener.Accept()
		if err != nil {
			util.LogNetworkError(err.Error())
			continue
		}
		go b.handleClientRequest(con, clientID)
		clientID++
	}
}

func (b *BattleServer) handleClientRequest(con net.Conn, id uint64) {
	connectionDropped := func() {
		util.LogNetworkInfo(fmt.Sprintf("[BattleServer] Client(%d) disconnected!", id))
		b.mu.Lock()
		delete(b.connectedClients, id)
		b.mu.Unlock()
		con.Close()
	}
	defer connectionDropped()
	clientReader := bufio.NewReader(con)
	util.LogNetworkInfo(fmt.Sprintf("[BattleServer] New client(%d) connected! Waiting for client messages.", id))
	for {
		messageType, err := clientReader.ReadString('\n')
		if err != nil {
			return
		}
		message, err := clientReader.ReadString('\n')
		if err != nil {
			return
		}
		b.GenerateResponse(con, id, strings.TrimSpace(messageType), strings.TrimSpace(message))
	}
}

func (b *BattleServer) GenerateResponse(con net.Conn, id uint64, msgType string, message string) {
	switch msgType {
	case "Login":
		var loginMsg game.LoginMessage
		if util.FromJson(message, &loginMsg) {
			b.Login(con, id, loginMsg)
		}
	case "CreateGame":
		var createGameMsg game.CreateGameMessage
		if util.FromJson(message, &createGameMsg) {
			b.CreateGame(id, createGameMsg)
		}
	case "JoinGame":
		var joinGameMsg game.JoinGameMessage
		if util.FromJson(message, &joinGameMsg) {
			b.JoinGame(id, joinGameMsg)
		}
	case "IssueCommand":
		var commandMsg game.IssueCommandMessage
		if util.FromJson(message, &commandMsg) {
			b.IssueCommand(id, commandMsg)
		}
	case "ExecuteTurn":
		b.ExecuteTurn(id)
	case "UndoCommand":
		b.UndoCommand(id)
	}
}

func (b *BattleServer) client(userID uint64) *UserConnection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connectedClients[userID]
}

func (b *BattleServer) respond(connection *UserConnection, messageType string, response any) {
	asJson, _ := json.Marshal(response)
	b.writeToClient(connection, []byte(messageType), asJson)
}

func (b *BattleServer) respondWithMessage(connection *UserConnection, response game.Message) {
	b.respond(connection, response.MessageType(), response)
}

func (b *BattleServer) writeFromBuffer(userID uint64, msgType, msg []byte) {
	connection := b.client(userID)
	if connection == nil {
		return
	}
	b.writeToClient(connection, msgType, msg)
}

func (b *BattleServer) writeToClient(connection *UserConnection, messageType, response []byte) {
	connection.writeMu.Lock()
	defer connection.writeMu.Unlock()
	if _, err := connection.raw.Write(append(messageType, '\n')); err != nil {
		util.LogNetworkError(err.Error())
		return
	}
	if _, err := connection.raw.Write(append(response, '\n')); err != nil {
		util.LogNetworkError(err.Error())
	}
}

func (b *BattleServer) Login(con net.Conn, userID uint64, msg game.LoginMessage) {
	userConnection := &UserConnection{raw: con, id: userID, name: msg.Username}
	b.mu.Lock()
	b.connectedClients[userID] = userConnection
	b.mu.Unlock()
	b.respond(userConnection, "LoginResponse", game.ActionResponse{Success: true, Message: "Welcome to Skirmish"})
}

func (b *BattleServer) CreateGame(userID uint64, msg game.CreateGameMessage) {
	user := b.client(userID)
	if user == nil {
		return
	}
	gameID := msg.GameIdentifier
	if gameID == "" {
		gameID = uuid.NewString()
	}
	gridSize := msg.GridSize
	if gridSize <= 0 {
		gridSize = b.config.GridSize
	}

	b.mu.Lock()
	if _, alreadyExists := b.runningGames[gameID]; alreadyExists {
		b.mu.Unlock()
		b.respond(user, "CreateGameResponse", game.ActionResponse{Success: false, Message: "Game already exists"})
		return
	}
	instance := NewGameInstance(gameID, gridSize, msg.Seed)
	instance.AddPlayer(userID, user.name)
	if msg.AIOpponent != "" {
		instance.SetAIOpponent(msg.AIOpponent)
	}
	user.activeGame = gameID
	b.runningGames[gameID] = instance
	ready := instance.IsReady()
	b.mu.Unlock()

	b.respond(user, "CreateGameResponse", game.ActionResponse{Success: true, Message: gameID})

	if ready {
		b.startGame(instance)
	}
}

func (b *BattleServer) JoinGame(userID uint64, msg game.JoinGameMessage) {
	user := b.client(userID)
	if user == nil {
		return
	}

	b.mu.Lock()
	instance, exists := b.runningGames[msg.GameID]
	if !exists {
		b.mu.Unlock()
		b.respond(user, "JoinGameResponse", game.ActionResponse{Success: false, Message: "Game does not exist"})
		return
	}
	if instance.HasStarted() || instance.IsFull() {
		b.mu.Unlock()
		b.respond(user, "JoinGameResponse", game.ActionResponse{Success: false, Message: "Game already started"})
		return
	}
	instance.AddPlayer(userID, user.name)
	user.activeGame = msg.GameID
	ready := instance.IsReady()
	b.mu.Unlock()

	b.respond(user, "JoinGameResponse", game.ActionResponse{Success: true, Message: "Game joined"})

	if ready {
		b.startGame(instance)
	}
}

func (b *BattleServer) startGame(instance *GameInstance) {
	util.LogGameInfo(fmt.Sprintf("[BattleServer] Starting game %s", instance.GetID()))
	playerNames := instance.PlayerNames()
	playerTeams := instance.PlayerTeams()

	for _, playerID := range instance.GetPlayerIDs() {
		user := b.client(playerID)
		if user == nil {
			util.LogNetworkError(fmt.Sprintf("[BattleServer] ERR -> Player %d does not exist", playerID))
			continue
		}
		b.respond(user, "GameStarted", game.GameStartedMessage{
			GameID:        instance.GetID(),
			OwnID:         playerID,
			OwnTeam:       instance.PlayerTeam(playerID),
			PlayerNameMap: playerNames,
			PlayerTeamMap: playerTeams,
			State:         instance.State(),
		})
	}

	instance.Start(b.writeFromBuffer)

	if instance.IsGameOver() {
		b.removeGame(instance)
	}
}

func (b *BattleServer) IssueCommand(userID uint64, msg game.IssueCommandMessage) {
	user, instance, ok := b.getUserAndGame(userID)
	if !ok {
		return
	}
	success, reason := instance.ReceiveCommand(userID, msg.GameCommand)
	b.respondWithMessage(user, game.ActionResponse{Success: success, Message: reason})
}

func (b *BattleServer) ExecuteTurn(userID uint64) {
	user, instance, ok := b.getUserAndGame(userID)
	if !ok {
		return
	}
	success, reason := instance.ReceiveExecute(userID)
	b.respondWithMessage(user, game.ActionResponse{Success: success, Message: reason})

	if instance.IsGameOver() {
		b.removeGame(instance)
	}
}

func (b *BattleServer) UndoCommand(userID uint64) {
	user, instance, ok := b.getUserAndGame(userID)
	if !ok {
		return
	}
	success, reason := instance.ReceiveUndo(userID)
	b.respondWithMessage(user, game.ActionResponse{Success: success, Message: reason})
}

func (b *BattleServer) removeGame(instance *GameInstance) {
	instance.Dispose()
	b.mu.Lock()
	for _, playerID := range instance.GetPlayerIDs() {
		if user, exists := b.connectedClients[playerID]; exists {
			user.activeGame = ""
		}
	}
	delete(b.runningGames, instance.GetID())
	b.mu.Unlock()
	util.LogGameInfo(fmt.Sprintf("[BattleServer] Game '%s' removed", instance.GetID()))
}

func (b *BattleServer) getUserAndGame(userID uint64) (*UserConnection, *GameInstance, bool) {
	b.mu.Lock()
	user, exists := b.connectedClients[userID]
	if !exists {
		b.mu.Unlock()
		return nil, nil, false
	}
	activeGame := user.activeGame
	if activeGame == "" {
		b.mu.Unlock()
		b.respondWithMessage(user, game.ActionResponse{Success: false, Message: "You are not in a game"})
		return nil, nil, false
	}
	instance, exists := b.runningGames[activeGame]
	b.mu.Unlock()
	if !exists {
		b.respondWithMessage(user, game.ActionResponse{Success: false, Message: "Game does not exist"})
		return nil, nil, false
	}
	return user, instance, true
}
