package game

import (
	"bufio"
	"encoding/json"
	"net"
	"strings"

	"github.com/pkg/errors"
)

// ServerConnection is the client side of the wire protocol: newline-framed
// message type followed by a newline-framed JSON body.
type ServerConnection struct {
	connection   net.Conn
	eventHandler func(msg StringMessage)
}

type StringMessage struct {
	Message     string
	MessageType string
}

func NewTCPConnection(endpoint string) (*ServerConnection, error) {
	con, err := net.Dial("tcp", endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", endpoint)
	}
	s := &ServerConnection{connection: con}
	go s.readLoop(bufio.NewReader(con))
	return s, nil
}

func NewTCPConnectionWithHandler(endpoint string, handler func(msg StringMessage)) (*ServerConnection, error) {
	con, err := net.Dial("tcp", endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", endpoint)
	}
	s := &ServerConnection{connection: con}
	s.SetEventHandler(handler)
	go s.readLoop(bufio.NewReader(con))
	return s, nil
}

func (c *ServerConnection) send(messageType string, message any) error {
	dataAsJson, err := json.Marshal(message)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", messageType)
	}
	if _, err := c.connection.Write(append([]byte(messageType), '\n')); err != nil {
		return err
	}
	_, err = c.connection.Write(append(dataAsJson, '\n'))
	return err
}

func (c *ServerConnection) readLoop(serverReader *bufio.Reader) {
	for {
		// protocol: messageType (string) + \n + data as json (string) + \n
		messageType, err := serverReader.ReadString('\n')
		if err != nil {
			println(err.Error())
			return
		}
		message, err := serverReader.ReadString('\n')
		if err != nil {
			println(err.Error())
			return
		}
		msg := StringMessage{
			MessageType: strings.TrimSpace(messageType),
			Message:     strings.TrimSpace(message),
		}
		if c.eventHandler != nil {
			c.eventHandler(msg)
		}
	}
}

func (c *ServerConnection) SetEventHandler(handler func(msg StringMessage)) {
	c.eventHandler = handler
}

func (c *ServerConnection) Close() error {
	return c.connection.Close()
}

func (c *ServerConnection) Login(username string) error {
	return c.send("Login", LoginMessage{Username: username})
}

func (c *ServerConnection) CreateGame(gameID string, gridSize int, seed int64, aiOpponent AIDifficulty) error {
	return c.send("CreateGame", CreateGameMessage{
		GameIdentifier: gameID,
		GridSize:       gridSize,
		Seed:           seed,
		AIOpponent:     aiOpponent,
	})
}

func (c *ServerConnection) JoinGame(gameID string) error {
	return c.send("JoinGame", JoinGameMessage{GameID: gameID})
}

func (c *ServerConnection) IssueCommand(cmd Command) error {
	return c.send("IssueCommand", IssueCommandMessage{GameCommand: cmd})
}

func (c *ServerConnection) ExecuteTurn() error {
	return c.send("ExecuteTurn", ExecuteTurnMessage{})
}

func (c *ServerConnection) UndoCommand() error {
	return c.send("UndoCommand", UndoCommandMessage{})
}
