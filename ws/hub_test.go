package ws

import (
	"testing"

	"github.com/gofiber/websocket/v2"
	"github.com/stretchr/testify/assert"
)

func TestSendWithoutConnections(t *testing.T) {
	hub := NewHub()

	err := hub.Send(7, "notification", map[string]interface{}{"message": "hello"})
	assert.Error(t, err)
}

func TestRegisterUnregisterBookkeeping(t *testing.T) {
	hub := NewHub()
	first := &websocket.Conn{}
	second := &websocket.Conn{}

	hub.register(7, first)
	hub.register(7, second)

	hub.unregister(7, first)
	hub.mu.Lock()
	remaining := len(hub.conns[7])
	hub.mu.Unlock()
	assert.Equal(t, 1, remaining)

	// Removing the last connection drops the user entry entirely
	hub.unregister(7, second)
	hub.mu.Lock()
	_, present := hub.conns[7]
	hub.mu.Unlock()
	assert.False(t, present)

	// Unregistering an unknown connection is harmless
	hub.unregister(7, first)
}
