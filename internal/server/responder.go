package server

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kpereira/lobbychat/internal/persona"
	"github.com/kpereira/lobbychat/internal/protocol"
)

// streamState tracks the lifecycle of one bot response stream.
type streamState int

const (
	streamIdle streamState = iota
	streamStreaming
	streamCompleted
	streamFailed
)

func (s streamState) String() string {
	switch s {
	case streamIdle:
		return "idle"
	case streamStreaming:
		return "streaming"
	case streamCompleted:
		return "completed"
	case streamFailed:
		return "failed"
	}
	return "unknown"
}

// respondAsBot requests one streamed completion from the backend and fans the
// fragments out to the lobby's room. The very first non-empty fragment also
// emits an empty chat message from the persona so clients can materialize a
// message bubble before content arrives. A completed stream ends with an
// aiEnd event; a failed one ends with a single system notice and no aiEnd.
// Fragments already broadcast before a failure stay visible.
func (s *Server) respondAsBot(ctx context.Context, lobbyID string, p persona.Persona, message string) {
	state := streamIdle

	err := s.completer.StreamChat(ctx, p.SystemPrompt, message, func(token string) error {
		if token == "" {
			return nil
		}
		first := state == streamIdle
		state = streamStreaming
		s.emit.ToRoom(lobbyID, protocol.AIChunkEvent(p.DisplayName, token))
		if first {
			s.emit.ToRoom(lobbyID, protocol.ChatEvent(p.DisplayName, ""))
		}
		return nil
	})
	if err != nil {
		state = streamFailed
		s.log.WithFields(logrus.Fields{
			"lobby":   lobbyID,
			"persona": p.Name,
			"state":   state,
		}).Warnf("bot stream error: %v", err)
		s.emit.ToRoom(lobbyID, protocol.ChatEvent(protocol.SenderSystem, "⚠️ "+p.DisplayName+" failed to respond."))
		return
	}

	state = streamCompleted
	s.emit.ToRoom(lobbyID, protocol.AIEndEvent(p.DisplayName))
	s.log.WithFields(logrus.Fields{
		"lobby":   lobbyID,
		"persona": p.Name,
		"state":   state,
	}).Debug("bot stream finished")
}
