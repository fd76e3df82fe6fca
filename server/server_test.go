package server

import (
	"fmt"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/memmaker/skirmish/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeClient gives the server a real connection whose client end is drained
// in the background, so writes from the server never block the test.
func pipeClient(t *testing.T) net.Conn {
	t.Helper()
	serverSide, clientSide := net.Pipe()
	go io.Copy(io.Discard, clientSide)
	t.Cleanup(func() {
		serverSide.Close()
		clientSide.Close()
	})
	return serverSide
}

func TestConcurrentLobbyRequests(t *testing.T) {
	b := NewBattleServer(Config{GridSize: 8})

	const clients = 16
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		con := pipeClient(t)
		id := uint64(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.GenerateResponse(con, id, "Login", fmt.Sprintf(`{"Username":"player-%d"}`, id))
			b.GenerateResponse(con, id, "CreateGame", fmt.Sprintf(`{"GameIdentifier":"match-%d","GridSize":8,"Seed":3}`, id))
		}()
	}
	wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Len(t, b.connectedClients, clients)
	assert.Len(t, b.runningGames, clients)
	for i := 0; i < clients; i++ {
		user := b.connectedClients[uint64(i)]
		require.NotNil(t, user)
		assert.Equal(t, fmt.Sprintf("match-%d", i), user.activeGame)
	}
}

func TestJoinRejectedOnceMatchIsRunning(t *testing.T) {
	b := NewBattleServer(Config{GridSize: 8})

	for id := uint64(0); id < 3; id++ {
		con := pipeClient(t)
		b.GenerateResponse(con, id, "Login", fmt.Sprintf(`{"Username":"player-%d"}`, id))
	}

	b.CreateGame(0, game.CreateGameMessage{GameIdentifier: "duel", GridSize: 8, Seed: 3})
	b.JoinGame(1, game.JoinGameMessage{GameID: "duel"})

	b.mu.Lock()
	instance := b.runningGames["duel"]
	b.mu.Unlock()
	require.NotNil(t, instance)
	require.True(t, instance.HasStarted())

	// the match is full and running, a latecomer stays out
	b.JoinGame(2, game.JoinGameMessage{GameID: "duel"})

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Empty(t, b.connectedClients[2].activeGame)
	assert.Len(t, b.runningGames["duel"].GetPlayerIDs(), 2)
}
