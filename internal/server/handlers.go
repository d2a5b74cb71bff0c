package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kpereira/lobbychat/internal/lobby"
	"github.com/kpereira/lobbychat/internal/protocol"
)

const (
	defaultMaxHumans = 5
	defaultMaxBots   = 1
)

// handleEvent dispatches one inbound client frame. Malformed frames (missing
// required fields) are dropped with a warn log; no failure here ever
// terminates the connection or the process.
func (s *Server) handleEvent(ctx context.Context, connID uuid.UUID, in protocol.Inbound) {
	switch in.Type {
	case protocol.TypeGetLobbies:
		s.handleGetLobbies(connID)
	case protocol.TypeCreateLobby:
		s.handleCreateLobby(connID, in)
	case protocol.TypeJoinLobby:
		s.handleJoinLobby(connID, in)
	case protocol.TypeSendMessage:
		s.handleSendMessage(ctx, connID, in)
	default:
		s.log.Warnf("unknown event type %q from connection %s", in.Type, connID)
	}
}

func (s *Server) handleGetLobbies(connID uuid.UUID) {
	s.emit.ToConn(connID, protocol.LobbiesEvent(s.lobbies.Summaries()))
}

func (s *Server) handleCreateLobby(connID uuid.UUID, in protocol.Inbound) {
	if in.LobbyID == "" {
		s.log.Warnf("createLobby without lobbyId from connection %s", connID)
		return
	}
	maxHumans := defaultMaxHumans
	if in.MaxHumans != nil {
		maxHumans = *in.MaxHumans
	}
	maxBots := defaultMaxBots
	if in.MaxBots != nil {
		maxBots = *in.MaxBots
	}
	isPrivate := false
	if in.IsPrivate != nil {
		isPrivate = *in.IsPrivate
	}
	if s.lobbies.Create(in.LobbyID, maxHumans, maxBots, isPrivate) {
		s.log.Infof("lobby created: %s", in.LobbyID)
		s.emit.ToAll(protocol.LobbiesEvent(s.lobbies.Summaries()))
	}
}

func (s *Server) handleJoinLobby(connID uuid.UUID, in protocol.Inbound) {
	if in.LobbyID == "" || in.Username == "" {
		s.log.Warnf("joinLobby with missing fields from connection %s", connID)
		return
	}
	switch s.lobbies.Join(in.LobbyID, in.Username) {
	case lobby.JoinNotFound:
		// Joining an absent lobby is silently ignored.
	case lobby.JoinRejoined:
		s.hub.JoinRoom(connID, in.LobbyID)
		s.hub.Bind(connID, in.LobbyID, in.Username)
		present := "None"
		if bots := s.lobbies.SpawnedBots(in.LobbyID); len(bots) > 0 {
			present = strings.Join(bots, ", ")
		}
		s.emit.ToConn(connID, protocol.ChatEvent(protocol.SenderSystem,
			"You have rejoined the lobby. Current bots present: "+present))
	case lobby.JoinFull:
		s.emit.ToConn(connID, protocol.ChatEvent(protocol.SenderSystem, "❌ Lobby is full."))
	case lobby.JoinOK:
		s.hub.JoinRoom(connID, in.LobbyID)
		s.hub.Bind(connID, in.LobbyID, in.Username)
		s.emit.ToRoom(in.LobbyID, protocol.ChatEvent(protocol.SenderSystem, in.Username+" joined."))
		s.emit.ToRoom(in.LobbyID, protocol.ChatEvent(protocol.SenderSystem,
			"Type '@bot_name' to talk to a bot or 'spawn @bot_name' to add a bot (if seats available)!\nList of available bots: "+
				strings.Join(s.personas.DisplayNames(), ", ")))
		s.emit.ToAll(protocol.LobbiesEvent(s.lobbies.Summaries()))
	}
}

// handleSendMessage echoes the message to the room first, then runs command
// classification, the trivia check, and bot-mention routing. The echo is
// unconditional; classification side effects never retract it.
func (s *Server) handleSendMessage(ctx context.Context, connID uuid.UUID, in protocol.Inbound) {
	if in.LobbyID == "" || in.Sender == "" {
		s.log.Warnf("sendMessage with missing fields from connection %s", connID)
		return
	}
	s.emit.ToRoom(in.LobbyID, protocol.ChatEvent(in.Sender, in.Message))

	if !s.lobbies.Exists(in.LobbyID) {
		return
	}

	if cmd, ok := ClassifyCommand(in.Message).(SpawnRequest); ok {
		s.handleSpawn(in.LobbyID, cmd.BotName)
		return
	}

	// The trivia check runs for every plain message, whether or not a bot
	// will also respond to it.
	if s.lobbies.RecordAnswer(in.LobbyID, in.Message) {
		s.emit.ToRoom(in.LobbyID, protocol.ChatEvent(protocol.SenderGame,
			fmt.Sprintf("🎉 %s answered correctly!", in.Sender)))
	}

	targets := mentionedPersonas(s.personas, s.lobbies.SpawnedBots(in.LobbyID), in.Message)
	if len(targets) == 0 || in.Sender == protocol.SenderAIBot {
		return
	}
	s.respondAsBot(ctx, in.LobbyID, targets[0], in.Message)
}

func (s *Server) handleSpawn(lobbyID, botName string) {
	p, ok := s.personas.Resolve(botName)
	if !ok {
		s.emit.ToRoom(lobbyID, protocol.ChatEvent(protocol.SenderSystem,
			fmt.Sprintf("Bot %s does not exist.", strings.ToLower(botName))))
		return
	}
	var notice string
	switch s.lobbies.SpawnBot(lobbyID, p.Name) {
	case lobby.SpawnOK:
		notice = p.DisplayName + " spawned!"
	case lobby.SpawnSeatLimit:
		notice = "❌ AI seat limit reached in this lobby."
	case lobby.SpawnDuplicate:
		notice = p.DisplayName + " is already spawned."
	case lobby.SpawnLobbyNotFound:
		return
	}
	s.emit.ToRoom(lobbyID, protocol.ChatEvent(protocol.SenderSystem, notice))
}

// handleDisconnect cleans up after a closed connection: the username leaves
// its lobby, the room is notified, and the global listing is refreshed. A
// connection that never joined a lobby needs no cleanup.
func (s *Server) handleDisconnect(connID uuid.UUID) {
	binding, bound := s.hub.Unregister(connID)
	if !bound {
		return
	}
	if !s.lobbies.Leave(binding.LobbyID, binding.Username) {
		return
	}
	s.emit.ToRoom(binding.LobbyID, protocol.ChatEvent(protocol.SenderSystem, binding.Username+" left."))
	s.emit.ToAll(protocol.LobbiesEvent(s.lobbies.Summaries()))
}
