package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/playpool/eightball/internal/api/handlers"
	"github.com/playpool/eightball/internal/config"
	"github.com/playpool/eightball/internal/middleware"
	"github.com/playpool/eightball/internal/session"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, mgr *session.Manager, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] no-cache headers enabled for all routes")
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck(mgr))
		v1.GET("/scenarios", handlers.ListScenarios)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", handlers.CreateSession(mgr))
			sessions.GET("", handlers.ListSessions(mgr))
			sessions.GET("/:id", handlers.GetSession(mgr))
			sessions.DELETE("/:id", handlers.DeleteSession(mgr))
			sessions.POST("/:id/scenario/:name", handlers.LoadScenario(mgr))
			sessions.GET("/:id/ws", middleware.WebSocketCORSCheck(cfg), handlers.HandleSessionWebSocket(mgr, cfg))
		}
	}
}
