package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpereira/lobbychat/internal/protocol"
)

func TestBroadcastTriviaSkipsEmptyLobbies(t *testing.T) {
	s, m := newTestServer(&fakeCompleter{})
	createLobby(s, "busy", 5, 1)
	createLobby(s, "empty", 5, 1)
	joinLobby(s, uuid.New(), "busy", "alice")
	m.clearRoom("busy")

	s.broadcastTrivia()

	evs := m.room("busy")
	require.Len(t, evs, 1)
	assert.Equal(t, protocol.SenderGame, evs[0]["sender"])
	assert.Equal(t, "🧠 Trivia: What is the capital of France?", evs[0]["message"])

	assert.Empty(t, m.room("empty"))
}

func TestBroadcastTriviaNeverAdvancesTheIndex(t *testing.T) {
	s, m := newTestServer(&fakeCompleter{})
	createLobby(s, "room1", 5, 1)
	joinLobby(s, uuid.New(), "room1", "alice")

	s.broadcastTrivia()
	s.broadcastTrivia()
	assert.Equal(t, 0, s.lobbies.QuestionIndex("room1"))

	// Repeated ticks repeat the same question until someone answers.
	m.clearRoom("room1")
	s.broadcastTrivia()
	sendMessage(s, "room1", "alice", "paris")
	s.broadcastTrivia()

	var game []protocol.Event
	for _, ev := range m.room("room1") {
		if ev["sender"] == protocol.SenderGame {
			game = append(game, ev)
		}
	}
	require.Len(t, game, 3) // tick, celebration, tick
	assert.Equal(t, "🧠 Trivia: What is the capital of France?", game[0]["message"])
	assert.Equal(t, "🧠 Trivia: What is 2 + 2?", game[2]["message"])
}
