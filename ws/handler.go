package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vnkhanh/e-course-admin/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleCourseFormWebSocket streams toasts of one form session. A dropped
// socket does not end the session: the page reconnects, and the session only
// goes away on DELETE or when the idle sweep finds it.
func HandleCourseFormWebSocket(hub *Hub, sessions *services.FormSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := uuid.Parse(c.Param("session"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
			return
		}
		if _, err := sessions.Get(sessionID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form session not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("WebSocket upgrade failed:", err)
			return
		}
		key := sessionID.String()
		log.Printf("Course form WS connected: session=%s", key)

		hub.Register(key, conn)
		hello, _ := json.Marshal(gin.H{"type": "connected", "session": key})
		hub.Broadcast(key, hello)

		// pong cũng tính là hoạt động của session
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			sessions.Get(sessionID)
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		hub.Unregister(key, conn)
		log.Printf("Course form WS disconnected: session=%s", key)
	}
}
