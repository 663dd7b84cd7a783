package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Conn is the subset of *websocket.Conn the manager needs; tests substitute
// fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Manager keeps track of connected dashboard clients and fans telemetry
// out to all of them.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]Conn // clientID -> conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]Conn)}
}

// Register registers a client connection, replacing any existing one.
func (m *Manager) Register(clientID string, conn Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[clientID]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	m.connections[clientID] = conn
}

// Unregister removes a client connection.
func (m *Manager) Unregister(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.connections[clientID]; ok {
		_ = conn.Close()
		delete(m.connections, clientID)
	}
}

// Broadcast sends a text message to every connected client. Clients whose
// write fails are dropped.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, conn := range m.connections {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("dropping client %s: %v", id, err)
			_ = conn.Close()
			delete(m.connections, id)
		}
	}
}

// Count returns the number of connected clients.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}
