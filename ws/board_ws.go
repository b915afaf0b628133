package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/hectorDev2/macao-comanda/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// BoardHub fans ledger events out to every connected staff device. All
// devices watch the same ledger, so there is a single room.
type BoardHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewBoardHub() *BoardHub {
	return &BoardHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.Event, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish implements services.EventPublisher. Never blocks the caller: if
// the hub is backed up the event is dropped, clients resync by polling.
func (h *BoardHub) Publish(e services.Event) {
	select {
	case h.broadcast <- e:
	default:
	}
}

// Run dispatches register/unregister/broadcast forever; start it with
// go hub.Run().
func (h *BoardHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/board
func (h *BoardHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	// The feed is one-way; read only to notice the disconnect.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
