// internal/socket/hub.go
package socket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = 5 * time.Second

// Event is pushed to every open dashboard after a return request changes.
type Event struct {
	Type   string `json:"type"`
	Action string `json:"action"` // created, updated, deleted
	ID     string `json:"id,omitempty"`
}

// ReturnsChanged builds the event broadcast after a mutation.
func ReturnsChanged(action, id string) Event {
	return Event{Type: "returns.changed", Action: action, ID: id}
}

// Conn is the part of *websocket.Conn the hub writes to.
type Conn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// sendBuffer is how many events may queue for one client before it is
// considered too slow and dropped.
const sendBuffer = 16

type client struct {
	conn Conn
	send chan []byte
}

// Hub quản lý tất cả các client WebSocket.
type Hub struct {
	// clients là một map để lưu trữ các kết nối, key là id ngẫu nhiên của mỗi kết nối.
	clients map[string]*client
	// mu là một Mutex để đảm bảo an toàn khi truy cập map clients từ nhiều goroutine.
	mu  sync.RWMutex
	log logrus.FieldLogger

	// OnChange is called with the client count after every register/unregister.
	OnChange func(clients int)
}

// NewHub tạo một Hub mới.
func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		log:     log,
	}
}

// Register thêm một client mới vào Hub và trả về id của nó.
// Mỗi client có một goroutine riêng để ghi.
func (h *Hub) Register(conn Conn) string {
	id := uuid.NewString()
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[id] = c
	n := len(h.clients)
	h.mu.Unlock()

	go h.writePump(id, c)

	h.log.WithField("client", id).Debug("WebSocket client registered")
	h.notify(n)
	return id
}

// Unregister xóa một client khỏi Hub. Its writer flushes what is queued and
// closes the connection.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		close(c.send)
		h.log.WithField("client", id).Debug("WebSocket client unregistered")
		h.notify(n)
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues ev for every client and returns without waiting for the
// writes. Clients whose queue is full are dropped.
func (h *Hub) Broadcast(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.WithError(err).Error("Failed to encode websocket event")
		return
	}

	var slow []string
	h.mu.RLock()
	for id, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range slow {
		h.log.WithField("client", id).Warn("Dropping slow websocket client")
		h.Unregister(id)
	}
}

// writePump gửi các tin nhắn trong hàng đợi tới một client.
func (h *Hub) writePump(id string, c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.WithError(err).WithField("client", id).Warn("Dropping websocket client after failed write")
			h.Unregister(id)
			return
		}
	}
}

func (h *Hub) notify(n int) {
	if h.OnChange != nil {
		h.OnChange(n)
	}
}
