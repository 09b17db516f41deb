package state

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one connected player. ConnMu serializes writes to the socket.
type Client struct {
	ID     uint
	Conn   *websocket.Conn
	ConnMu sync.Mutex
}

var (
	clients   = make(map[uint]*Client)
	clientsMu sync.RWMutex
)

// RegisterClient records the connection for a player, closing any previous
// one so a reconnect does not leak the displaced socket.
func RegisterClient(id uint, conn *websocket.Conn) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	if old, ok := clients[id]; ok && old.Conn != conn {
		old.Conn.Close()
	}

	clients[id] = &Client{
		ID:   id,
		Conn: conn,
	}
}

// UnregisterClient removes the player's entry only when it still belongs to
// conn. The reader of a displaced connection must not evict its replacement.
func UnregisterClient(id uint, conn *websocket.Conn) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	if c, ok := clients[id]; ok && c.Conn == conn {
		delete(clients, id)
	}
}

func GetClient(id uint) *Client {
	clientsMu.RLock()
	defer clientsMu.RUnlock()

	return clients[id]
}

func AllClients() []*Client {
	clientsMu.RLock()
	defer clientsMu.RUnlock()

	all := make([]*Client, 0, len(clients))
	for _, c := range clients {
		all = append(all, c)
	}
	return all
}
