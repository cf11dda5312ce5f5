package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playpool/eightball/internal/game"
	"github.com/playpool/eightball/internal/session"
)

type sessionSummary struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Round     string `json:"round"`
	Mode      string `json:"mode"`
}

func summarize(s *session.Session) sessionSummary {
	snap := s.Snapshot()
	return sessionSummary{
		ID:        s.ID,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		Round:     snap.Round,
		Mode:      snap.Mode,
	}
}

// CreateSession starts a new 8-ball game
func CreateSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := mgr.Create()
		if err != nil {
			if errors.Is(err, session.ErrTooManySessions) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
				return
			}
			log.Printf("[API] create session failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":     s.ID,
			"ws_url": "/api/v1/sessions/" + s.ID + "/ws",
		})
	}
}

func ListSessions(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions := mgr.List()
		out := make([]sessionSummary, 0, len(sessions))
		for _, s := range sessions {
			out = append(out, summarize(s))
		}
		c.JSON(http.StatusOK, gin.H{"sessions": out})
	}
}

// GetSession returns the latest snapshot of a session
func GetSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := mgr.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusOK, s.Snapshot())
	}
}

func DeleteSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mgr.Remove(c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scenarios": game.ScenarioNames()})
}

// LoadScenario switches a session to one of the physics demo tables
func LoadScenario(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := mgr.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		name := c.Param("name")
		switch err := s.LoadScenario(name); {
		case err == nil:
			c.JSON(http.StatusAccepted, gin.H{"id": s.ID, "scenario": name})
		case errors.Is(err, game.ErrUnknownScenario):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, session.ErrSessionClosed):
			c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		}
	}
}
