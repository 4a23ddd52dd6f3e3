package websocket

import "sync"

type sender interface {
	WriteJSON(v any) error
}

// connection serialises writes; a game update for one player can be sent
// from the goroutine serving the opponent.
type connection struct {
	mu   sync.Mutex
	conn sender
}

func newConnection(conn sender) *connection {
	return &connection{conn: conn}
}

func (that *connection) WriteJSON(v any) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.conn.WriteJSON(v)
}

func (that *Server) register(playerID string, conn *connection) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	that.connections[playerID] = conn
}

// unregister drops every player bound to conn.
func (that *Server) unregister(conn *connection) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for playerID, registered := range that.connections {
		if registered == conn {
			delete(that.connections, playerID)
		}
	}
}

func (that *Server) connectionOf(playerID string) (*connection, bool) {
	that.connectionsMutex.RLock()
	defer that.connectionsMutex.RUnlock()

	conn, ok := that.connections[playerID]

	return conn, ok
}
