// Package server wires the lobby store, persona registry, connection hub, and
// generative backend into the websocket message flow.
package server

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kpereira/lobbychat/internal/ai"
	"github.com/kpereira/lobbychat/internal/hub"
	"github.com/kpereira/lobbychat/internal/lobby"
	"github.com/kpereira/lobbychat/internal/persona"
	"github.com/kpereira/lobbychat/internal/protocol"
)

// Emitter is the fan-out surface the server needs: per-room multicast, global
// broadcast, and per-connection unicast. *hub.Hub implements it.
type Emitter interface {
	ToRoom(room string, ev protocol.Event)
	ToAll(ev protocol.Event)
	ToConn(id uuid.UUID, ev protocol.Event)
}

// Server owns all lobby/chat state for one process. Everything is in-memory;
// nothing survives a restart.
type Server struct {
	log       *logrus.Logger
	hub       *hub.Hub
	emit      Emitter
	lobbies   *lobby.Store
	personas  *persona.Registry
	completer ai.Completer
}

// New assembles a Server from its collaborators.
func New(logger *logrus.Logger, h *hub.Hub, store *lobby.Store, registry *persona.Registry, completer ai.Completer) *Server {
	return &Server{
		log:       logger,
		hub:       h,
		emit:      h,
		lobbies:   store,
		personas:  registry,
		completer: completer,
	}
}
