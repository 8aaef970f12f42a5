// Package stream broadcasts scene-graph snapshots to renderer clients over
// WebSocket, so renderers can draw the simulator's scene without linking
// the physics engine or this module.
package stream

import (
	"sync"

	"github.com/gorilla/websocket"
)

// SafeWriter serializes writes to one WebSocket connection. gorilla/websocket
// permits only a single concurrent writer per connection.
type SafeWriter struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewSafeWriter wraps a WebSocket connection.
func NewSafeWriter(conn *websocket.Conn) *SafeWriter {
	return &SafeWriter{conn: conn}
}

// WriteJSON writes v as a JSON message.
func (w *SafeWriter) WriteJSON(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

// Close closes the underlying connection.
func (w *SafeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.Close()
}
