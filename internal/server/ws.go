package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/kpereira/lobbychat/internal/hub"
	"github.com/kpereira/lobbychat/internal/protocol"
)

// WSHandler upgrades the HTTP connection to a websocket, registers it with
// the hub, and runs the read loop until the client disconnects. Each handled
// frame runs to completion on this connection's goroutine before the next one
// is read; frames from other connections interleave freely, including during
// a long-running bot stream.
func (s *Server) WSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"lobby"},
			OriginPatterns: []string{"*"}, // Adjust in production.
		})
		if err != nil {
			s.log.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		if c.Subprotocol() != "lobby" {
			c.Close(websocket.StatusPolicyViolation, "client must speak the lobby subprotocol")
			return
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		conn := &hub.Conn{
			ID:  uuid.New(),
			Out: make(chan protocol.Event, 16),
		}
		s.hub.Register(conn)
		s.log.Infof("client connected: %s (%s)", conn.ID, r.RemoteAddr)

		go s.writePump(ctx, c, conn)
		s.readPump(ctx, c, conn)

		s.handleDisconnect(conn.ID)
		s.log.Infof("client disconnected: %s (%s)", conn.ID, r.RemoteAddr)
	}
}

// readPump reads frames off the websocket and dispatches them until the
// connection closes or the context is cancelled.
func (s *Server) readPump(ctx context.Context, c *websocket.Conn, conn *hub.Conn) {
	for {
		typ, msg, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || ctx.Err() != nil {
				return
			}
			s.log.Warnf("read error on connection %s: %v", conn.ID, err)
			return
		}
		if typ != websocket.MessageText {
			s.log.Warnf("ignoring non-text frame from connection %s", conn.ID)
			continue
		}

		var in protocol.Inbound
		if err := json.Unmarshal(msg, &in); err != nil {
			s.log.Warnf("invalid json from connection %s: %v", conn.ID, err)
			continue
		}
		if in.Type == "" {
			s.log.Warnf("frame without type from connection %s", conn.ID)
			continue
		}
		s.handleEvent(ctx, conn.ID, in)
	}
}

// writePump drains the connection's outbound channel onto the websocket and
// keeps the connection alive with periodic pings.
func (s *Server) writePump(ctx context.Context, c *websocket.Conn, conn *hub.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-conn.Out:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				s.log.Warnf("failed to marshal event for connection %s: %v", conn.ID, err)
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = c.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				s.log.Warnf("write error on connection %s: %v", conn.ID, err)
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
			err := c.Ping(pingCtx)
			cancel()
			if err != nil {
				s.log.Warnf("ping failed on connection %s: %v", conn.ID, err)
				return
			}
		}
	}
}
