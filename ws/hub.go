package ws

import (
	"fmt"
	"log"
	"sync"
	"time"

	"edutrack/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
)

// Hub is the process-local registry of live push connections, keyed by user
// id. Losing it on restart is acceptable: notifications are durably recorded
// before any push attempt.
type Hub struct {
	mu    sync.Mutex
	conns map[uint][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint][]*websocket.Conn)}
}

// Send delivers an event to every live connection of the user. Returns an
// error when no connection is registered; callers treat delivery as
// best-effort and must not fail their own operation on it.
func (h *Hub) Send(userID uint, event string, payload interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.conns[userID]
	if len(conns) == 0 {
		return fmt.Errorf("no active connection for user %d", userID)
	}

	message := fiber.Map{"event": event, "data": payload}
	alive := conns[:0]
	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(message); err != nil {
			conn.Close()
			continue
		}
		alive = append(alive, conn)
	}
	h.conns[userID] = alive

	if len(alive) == 0 {
		delete(h.conns, userID)
		return fmt.Errorf("no active connection for user %d", userID)
	}
	return nil
}

func (h *Hub) register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[userID] = append(h.conns[userID], conn)
}

func (h *Hub) unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.conns[userID]
	for i, c := range conns {
		if c == conn {
			h.conns[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}

// UpgradeMiddleware authenticates the handshake via a token query parameter
// before allowing the protocol upgrade
func UpgradeMiddleware(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	claims, err := middleware.ParseToken(c.Query("token"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}
	userID, ok := claims["userId"].(float64)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	c.Locals("userId", uint(userID))
	return c.Next()
}

// Handler upgrades the connection, registers it with the hub and holds it
// open until the client goes away
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userId").(uint)
		if !ok {
			conn.Close()
			return
		}

		// Greet before publishing the connection to the hub; once registered,
		// Send may write concurrently and the connection allows one writer
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(fiber.Map{"event": "connected", "data": fiber.Map{"message": "Connected to notifications"}}); err != nil {
			log.Printf("Failed to greet push connection for user %d: %v", userID, err)
			return
		}

		h.register(userID, conn)
		defer h.unregister(userID, conn)

		done := make(chan struct{})
		defer close(done)

		// Keep the connection alive with periodic pings
		go func() {
			ticker := time.NewTicker(pingInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout)); err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		// Clients only listen; drain until the connection drops
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
