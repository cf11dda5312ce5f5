package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playpool/eightball/internal/config"
	"github.com/playpool/eightball/internal/session"
	"github.com/playpool/eightball/internal/ws"
)

// HandleSessionWebSocket handles real-time game communication
func HandleSessionWebSocket(mgr *session.Manager, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := mgr.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		ws.ServeSession(c, s, cfg.WSSendBuffer)
	}
}
