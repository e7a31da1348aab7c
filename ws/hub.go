package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vnkhanh/e-course-admin/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans toasts out to the pages watching a form session.
type Hub struct {
	Clients map[string]map[*websocket.Conn]*Client // by form session ID
	Mutex   sync.RWMutex
}

var H = NewHub()

func NewHub() *Hub {
	return &Hub{
		Clients: make(map[string]map[*websocket.Conn]*Client),
	}
}

// Đăng ký kết nối cho session và chạy writer
func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.Clients[sessionID]; !ok {
		h.Clients[sessionID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[sessionID][conn] = client

	go h.writePump(client)
}

// Broadcast queues data for every connection of the session. Slow clients
// drop messages rather than block the sender.
func (h *Hub) Broadcast(sessionID string, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.Clients[sessionID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

func (h *Hub) SendToast(sessionID string, toast models.Toast) {
	data, err := json.Marshal(toast)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	h.Broadcast(sessionID, data)
}

// Notifier binds the hub to one session so a course form can push toasts
// without knowing about websockets.
func (h *Hub) Notifier(sessionID string) SessionNotifier {
	return SessionNotifier{hub: h, sessionID: sessionID}
}

type SessionNotifier struct {
	hub       *Hub
	sessionID string
}

func (n SessionNotifier) Notify(toast models.Toast) {
	n.hub.SendToast(n.sessionID, toast)
}

func (h *Hub) Unregister(sessionID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Clients[sessionID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Clients, sessionID)
		}
	}
}

func (h *Hub) Connections(sessionID string) int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()
	return len(h.Clients[sessionID])
}

type Stats struct {
	Sessions    int `json:"sessions"`
	Connections int `json:"connections"`
}

func (h *Hub) GetStats() Stats {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	stats := Stats{Sessions: len(h.Clients)}
	for _, clients := range h.Clients {
		stats.Connections += len(clients)
	}
	return stats
}

// writePump gửi toast xuống client và ping định kỳ để proxy không cắt kết nối
func (h *Hub) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
		client.Conn.Close()
	}()
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
