// Package hub tracks live websocket connections, their room membership, and
// the (lobby, username) binding used for disconnect cleanup. It is also the
// fan-out point for outbound events.
package hub

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kpereira/lobbychat/internal/protocol"
)

// Conn wraps a single client's active websocket connection. Outbound events
// are queued on Out and drained by the connection's write pump.
type Conn struct {
	ID  uuid.UUID
	Out chan protocol.Event
}

// Binding is the ephemeral association between a connection and the lobby it
// joined. It exists solely so membership can be cleaned up on disconnect.
type Binding struct {
	LobbyID  string
	Username string
}

// Hub owns every live connection and the per-lobby rooms they have joined.
// One mutex guards all three maps; events are queued to member channels while
// the lock is held, so per-room delivery order follows emit order.
type Hub struct {
	mu       sync.Mutex
	log      *logrus.Logger
	conns    map[uuid.UUID]*Conn
	rooms    map[string]map[uuid.UUID]*Conn
	bindings map[uuid.UUID]Binding
}

// New initializes an empty Hub.
func New(logger *logrus.Logger) *Hub {
	return &Hub{
		log:      logger,
		conns:    make(map[uuid.UUID]*Conn),
		rooms:    make(map[string]map[uuid.UUID]*Conn),
		bindings: make(map[uuid.UUID]Binding),
	}
}

// Register adds a connection to the hub.
func (h *Hub) Register(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.ID] = c
}

// Unregister removes a connection from the hub, all rooms, and its binding.
// It returns the binding the connection held, if any, and closes the outbound
// channel so the write pump drains and exits.
func (h *Hub) Unregister(id uuid.UUID) (Binding, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.conns[id]
	if !ok {
		return Binding{}, false
	}
	delete(h.conns, id)
	for _, members := range h.rooms {
		delete(members, id)
	}
	b, bound := h.bindings[id]
	delete(h.bindings, id)
	close(c.Out)
	return b, bound
}

// JoinRoom adds the connection to a room. Joining a room twice is a no-op.
func (h *Hub) JoinRoom(id uuid.UUID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.conns[id]
	if !ok {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[uuid.UUID]*Conn)
		h.rooms[room] = members
	}
	members[id] = c
}

// Bind records which lobby and username the connection is attached to.
func (h *Hub) Bind(id uuid.UUID, lobbyID, username string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[id]; !ok {
		return
	}
	h.bindings[id] = Binding{LobbyID: lobbyID, Username: username}
}

// Binding returns the connection's current lobby binding, if any.
func (h *Hub) Binding(id uuid.UUID) (Binding, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.bindings[id]
	return b, ok
}

// ToRoom queues an event to every current member of the room.
func (h *Hub) ToRoom(room string, ev protocol.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.rooms[room] {
		h.send(c, ev)
	}
}

// ToAll queues an event to every live connection.
func (h *Hub) ToAll(ev protocol.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.conns {
		h.send(c, ev)
	}
}

// ToConn queues an event to a single connection.
func (h *Hub) ToConn(id uuid.UUID, ev protocol.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.conns[id]; ok {
		h.send(c, ev)
	}
}

// send queues without blocking; a client that cannot drain its channel loses
// the event rather than stalling every other member of the room.
func (h *Hub) send(c *Conn, ev protocol.Event) {
	select {
	case c.Out <- ev:
	default:
		h.log.Warnf("dropping event for slow connection %s", c.ID)
	}
}
