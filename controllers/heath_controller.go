package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-course-admin/services"
	"github.com/vnkhanh/e-course-admin/ws"
)

func HealthCheck(hub *ws.Hub, sessions *services.FormSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Service is healthy",
			"timestamp": time.Now().Unix(),
			"sessions":  sessions.Len(),
			"websocket": gin.H{
				"enabled": true,
				"stats":   hub.GetStats(),
			},
		})
	}
}
