package ws

import (
	"sync"

	"go-stock-control/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Client is the part of a websocket connection the hub needs.
type Client interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type Hub struct {
	Clients    map[Client]bool
	Register   chan Client
	Unregister chan Client
	Broadcast  chan []byte
	mutex      sync.Mutex

	done     chan struct{}
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[Client]bool),
		Register:   make(chan Client),
		Unregister: make(chan Client),
		Broadcast:  make(chan []byte, 16),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return

		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			logger.Log.Info("dashboard client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					logger.Log.Debug("dropping dashboard client", zap.Error(err))
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Join registers conn unless the hub has been stopped.
func (h *Hub) Join(conn Client) {
	select {
	case h.Register <- conn:
	case <-h.done:
	}
}

// Leave unregisters conn unless the hub has been stopped.
func (h *Hub) Leave(conn Client) {
	select {
	case h.Unregister <- conn:
	case <-h.done:
	}
}

// Publish queues msg for every connected client without blocking the caller.
func (h *Hub) Publish(msg []byte) {
	select {
	case h.Broadcast <- msg:
	case <-h.done:
	default:
		logger.Log.Warn("dashboard broadcast queue full, dropping stock update")
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Stop closes every client and ends Run.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}
