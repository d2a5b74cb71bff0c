package server

import (
	"context"
	"time"

	"github.com/kpereira/lobbychat/internal/protocol"
)

// RunTriviaScheduler broadcasts the current trivia question to every
// non-empty lobby on a fixed interval until ctx is cancelled. It runs
// independently of client input and never advances a lobby's question index;
// only a correct answer does that.
func (s *Server) RunTriviaScheduler(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.broadcastTrivia()
		}
	}
}

// broadcastTrivia pushes each non-empty lobby's current question into its
// room as a Game chat message. Empty lobbies are skipped, not reset.
func (s *Server) broadcastTrivia() {
	for lobbyID, q := range s.lobbies.CurrentQuestions() {
		s.emit.ToRoom(lobbyID, protocol.ChatEvent(protocol.SenderGame, "🧠 Trivia: "+q.Prompt))
	}
}
