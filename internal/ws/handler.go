package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/playpool/eightball/internal/game"
	"github.com/playpool/eightball/internal/session"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origins are checked by middleware.WebSocketCORSCheck
	},
}

// Client is one websocket connection attached to a session.
type Client struct {
	conn      *websocket.Conn
	session   *session.Session
	snapshots <-chan game.Snapshot
	send      chan []byte
	done      chan struct{}
}

// WSMessage is the envelope for client messages.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type PointerData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ScrollData struct {
	Delta float64 `json:"delta"`
}

type snapshotMessage struct {
	Type string        `json:"type"`
	Data game.Snapshot `json:"data"`
}

// ServeSession upgrades the request and streams the session's snapshots to
// the client until either side goes away.
func ServeSession(c *gin.Context, s *session.Session, sendBuffer int) {
	sub, err := s.Subscribe()
	if err != nil {
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		s.Unsubscribe(sub)
		return
	}

	if sendBuffer <= 0 {
		sendBuffer = 64
	}
	client := &Client{
		conn:      conn,
		session:   s,
		snapshots: sub,
		send:      make(chan []byte, sendBuffer),
		done:      make(chan struct{}),
	}
	log.Printf("[WS] Client connected to session %s", s.ID)

	go client.writePump()
	go client.readPump()
}

// writePump writes snapshots and queued messages to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case snap, ok := <-c.snapshots:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// session stopped or client unsubscribed
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
				return
			}
			if err := c.conn.WriteJSON(snapshotMessage{Type: "snapshot", Data: snap}); err != nil {
				log.Printf("[WS] write error for session %s: %v", c.session.ID, err)
				return
			}

		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] write error for session %s: %v", c.session.ID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] ping error for session %s: %v", c.session.ID, err)
				return
			}

		case <-c.done:
			return
		}
	}
}

// readPump turns client messages into session inputs.
func (c *Client) readPump() {
	defer func() {
		close(c.done)
		c.session.Unsubscribe(c.snapshots)
		c.conn.Close()
		log.Printf("[WS] Client left session %s", c.session.ID)
	}()

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] unexpected close for session %s: %v", c.session.ID, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.sendError("Invalid message format")
			continue
		}

		in, err := decodeInput(msg)
		if err != nil {
			c.sendError(err.Error())
			continue
		}
		if err := c.session.Submit(in); err != nil {
			c.sendError(err.Error())
			if errors.Is(err, session.ErrSessionClosed) {
				return
			}
		}
	}
}

var (
	ErrInvalidPointer = errors.New("Invalid pointer data")
	ErrInvalidScroll  = errors.New("Invalid scroll data")
	ErrUnknownMessage = errors.New("Unknown message type")
)

func decodeInput(msg WSMessage) (session.Input, error) {
	switch msg.Type {
	case "pointer":
		var d PointerData
		if err := json.Unmarshal(msg.Data, &d); err != nil {
			return session.Input{}, ErrInvalidPointer
		}
		return session.Input{Kind: session.InputPointer, X: d.X, Y: d.Y}, nil
	case "trigger":
		return session.Input{Kind: session.InputTrigger}, nil
	case "scroll":
		var d ScrollData
		if err := json.Unmarshal(msg.Data, &d); err != nil {
			return session.Input{}, ErrInvalidScroll
		}
		return session.Input{Kind: session.InputScroll, Delta: d.Delta}, nil
	case "reset":
		return session.Input{Kind: session.InputReset}, nil
	}
	return session.Input{}, fmt.Errorf("%w: %s", ErrUnknownMessage, msg.Type)
}

// sendError queues an error message for the client, dropping it if the
// send buffer is full.
func (c *Client) sendError(message string) {
	data, _ := json.Marshal(map[string]interface{}{
		"type":    "error",
		"message": message,
	})
	select {
	case c.send <- data:
	default:
		log.Printf("[WS] send buffer full for session %s, dropping error %q", c.session.ID, message)
	}
}
