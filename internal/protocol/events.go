// Package protocol defines the wire format spoken over the lobby websocket:
// the inbound client envelope and the outbound event payloads.
package protocol

import "github.com/kpereira/lobbychat/internal/lobby"

// Inbound event types.
const (
	TypeGetLobbies  = "getLobbies"
	TypeCreateLobby = "createLobby"
	TypeJoinLobby   = "joinLobby"
	TypeSendMessage = "sendMessage"
)

// Outbound event types.
const (
	TypeLobbies = "lobbies"
	TypeChat    = "chat"
	TypeAIChunk = "aiChunk"
	TypeAIEnd   = "aiEnd"
)

// Reserved sender identities for server-originated chat messages. SenderAIBot
// is the identity bot traffic is attributed to; messages from it never trigger
// another bot response.
const (
	SenderSystem = "System"
	SenderGame   = "Game"
	SenderAIBot  = "AI Bot"
)

// Inbound is the envelope for client → server frames. Only the fields
// relevant to the given Type are expected to be set.
type Inbound struct {
	Type      string `json:"type"`
	LobbyID   string `json:"lobbyId,omitempty"`
	Username  string `json:"username,omitempty"`
	Sender    string `json:"sender,omitempty"`
	Message   string `json:"message,omitempty"`
	MaxHumans *int   `json:"maxHumans,omitempty"`
	MaxBots   *int   `json:"maxBots,omitempty"`
	IsPrivate *bool  `json:"isPrivate,omitempty"`
}

// Event is a server → client frame. Payloads are built through the
// constructors below so every event carries exactly the fields clients
// expect, including empty strings where the protocol requires them.
type Event map[string]interface{}

// ChatEvent is a chat line attributed to a user, a persona, or one of the
// reserved sender identities. An empty message is meaningful: it initializes
// a message bubble before streamed content arrives.
func ChatEvent(sender, message string) Event {
	return Event{"type": TypeChat, "sender": sender, "message": message}
}

// AIChunkEvent carries one incremental fragment of generated text.
func AIChunkEvent(sender, content string) Event {
	return Event{"type": TypeAIChunk, "sender": sender, "content": content}
}

// AIEndEvent signals the end of a persona's streamed response.
func AIEndEvent(sender string) Event {
	return Event{"type": TypeAIEnd, "sender": sender}
}

// LobbiesEvent carries the public lobby listing.
func LobbiesEvent(summaries []lobby.Summary) Event {
	return Event{"type": TypeLobbies, "lobbies": summaries}
}
