package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub fans collection-change events out to every connected client.
// Clients receive full refresh hints per collection rather than deltas;
// they re-read the collection on each event.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	log        *zap.Logger
	mutex      sync.Mutex
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			h.log.Info("websocket client connected", zap.Int("clients", len(h.Clients)))

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
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// NotifyCollection broadcasts a collection-changed event. appID
// namespaces the event so multiple tenants can share one hub endpoint.
func (h *Hub) NotifyCollection(appID, collection, action string, payload interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"type":       "collection_update",
		"app_id":     appID,
		"collection": collection,
		"action":     action,
		"payload":    payload,
	})
	if err != nil {
		h.log.Warn("failed to marshal ws payload", zap.Error(err))
		return
	}
	h.Broadcast <- msg
}
