package stream

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"scenebridge/pkg/scene"
)

// Server fans scene snapshots out to connected renderer clients over
// WebSocket. A freshly connected client immediately receives the latest
// published snapshot.
type Server struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[*SafeWriter]struct{}
	snapshot *SnapshotMessage
}

// NewServer creates a snapshot server logging through log.
func NewServer(log *zap.Logger) *Server {
	return &Server{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*SafeWriter]struct{}),
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the client goes away.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := NewSafeWriter(conn)

	s.mu.Lock()
	s.clients[client] = struct{}{}
	snapshot := s.snapshot
	s.mu.Unlock()

	s.log.Info("renderer connected", zap.String("remote", r.RemoteAddr))

	if snapshot != nil {
		if err := client.WriteJSON(snapshot); err != nil {
			s.drop(client)
			return
		}
	}

	// Reads only drive connection teardown; clients are not expected to
	// send anything.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.drop(client)
	s.log.Info("renderer disconnected", zap.String("remote", r.RemoteAddr))
}

func (s *Server) drop(client *SafeWriter) {
	s.mu.Lock()
	delete(s.clients, client)
	s.mu.Unlock()
	client.Close()
}

// Publish stores graph as the latest snapshot and sends it to every
// connected client. Clients whose connection fails are dropped.
func (s *Server) Publish(graph *scene.Graph) {
	msg := BuildSnapshot(graph)

	s.mu.Lock()
	s.snapshot = &msg
	clients := make([]*SafeWriter, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.WriteJSON(&msg); err != nil {
			s.log.Warn("dropping renderer client", zap.Error(err))
			s.drop(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
