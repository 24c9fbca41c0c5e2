package realtime

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"participium/backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// subscribeFrame is the only inbound message a client may send: joining
// or leaving a report room.
type subscribeFrame struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

// WSClient implements the Client interface over gorilla/websocket.
type WSClient struct {
	ConnID string
	UserID uint
	Conn   *websocket.Conn
	Hub    *Hub
	Send   chan models.RoomEvent

	mu    sync.RWMutex
	rooms map[string]struct{}
}

// NewWSClient builds a connection already joined to the caller's own
// notification room.
func NewWSClient(connID string, userID uint, conn *websocket.Conn, hub *Hub) *WSClient {
	c := &WSClient{
		ConnID: connID,
		UserID: userID,
		Conn:   conn,
		Hub:    hub,
		Send:   make(chan models.RoomEvent, 16),
		rooms:  make(map[string]struct{}),
	}
	c.rooms[fmt.Sprintf("user:%d", userID)] = struct{}{}
	return c
}

func (c *WSClient) GetConnID() string { return c.ConnID }
func (c *WSClient) GetUserID() uint   { return c.UserID }

func (c *WSClient) InRoom(room string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.rooms[room]
	return ok
}

func (c *WSClient) GetSendChannel() chan<- models.RoomEvent { return c.Send }

// Run starts the pumps.
func (c *WSClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the write pump.
func (c *WSClient) Close() {
	close(c.Send)
}

// readPump consumes join/leave frames. Only report rooms may be joined;
// the per-user room is fixed at connect time.
func (c *WSClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var frame subscribeFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			log.Printf("Error decoding JSON from client %s: %v", c.ConnID, err)
			continue
		}
		if !strings.HasPrefix(frame.Room, "report:") {
			continue
		}

		c.mu.Lock()
		switch frame.Action {
		case "join":
			c.rooms[frame.Room] = struct{}{}
		case "leave":
			delete(c.rooms, frame.Room)
		}
		c.mu.Unlock()
	}
}

// writePump drains the Send channel into the socket and keeps the
// connection alive with pings.
func (c *WSClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("Error encoding JSON for client %s: %v", c.ConnID, err)
				continue
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(data)

			n := len(c.Send)
			for i := 0; i < n; i++ {
				next := <-c.Send
				extra, _ := json.Marshal(next)
				w.Write(extra)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
