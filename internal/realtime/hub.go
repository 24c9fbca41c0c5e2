// Package realtime fans room events out to connected WebSocket clients.
// Events travel through Redis pub/sub so every server instance sees
// them, whichever instance committed the change.
package realtime

import (
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"participium/backend/internal/models"
)

// Client is the interface for one active realtime connection. It
// abstracts the underlying transport so the hub can manage connections
// uniformly.
type Client interface {
	// GetConnID returns the unique identifier of this connection.
	GetConnID() string
	// GetUserID returns the account the connection authenticated as.
	GetUserID() uint
	// InRoom reports whether the client joined the given room.
	InRoom(room string) bool

	// GetSendChannel returns the channel the hub pushes events into. It
	// is a send-only channel.
	GetSendChannel() chan<- models.RoomEvent

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts the connection down and releases its channels.
	Close()
}

// Subscriber yields the Redis subscription carrying every room event.
type Subscriber interface {
	SubscribeRooms() *redis.PubSub
}

// Hub owns the set of active connections. All membership changes and
// event fan-out happen on the Run goroutine; the channels are the only
// way in.
type Hub struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client

	Subscriber Subscriber

	// EventCh carries room events into the Run loop. The Redis listener
	// feeds it; tests may feed it directly.
	EventCh chan models.RoomEvent
}

// NewHub creates the hub.
func NewHub(sub Subscriber) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		Subscriber:   sub,
		EventCh:      make(chan models.RoomEvent),
	}
}

// startPubSubListener forwards Redis room events into the hub loop.
func (h *Hub) startPubSubListener() {
	go func() {
		pubsub := h.Subscriber.SubscribeRooms()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var event models.RoomEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("ERROR: Could not decode room event from Redis: %v", err)
				continue
			}
			h.EventCh <- event
		}
	}()
}

// Run is the hub loop. It must run on exactly one goroutine.
func (h *Hub) Run() {
	if h.Subscriber != nil {
		h.startPubSubListener()
	}

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetConnID()] = client
			log.Printf("realtime: client %s connected (user %d)", client.GetConnID(), client.GetUserID())

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client.GetConnID()]; ok {
				delete(h.Clients, client.GetConnID())
				client.Close()
				log.Printf("realtime: client %s disconnected", client.GetConnID())
			}

		case event := <-h.EventCh:
			h.broadcast(event)
		}
	}
}

// broadcast delivers one event to every client in its room. A client
// whose send buffer is full is dropped rather than blocking the loop.
func (h *Hub) broadcast(event models.RoomEvent) {
	for id, client := range h.Clients {
		if !client.InRoom(event.Room) {
			continue
		}
		select {
		case client.GetSendChannel() <- event:
		default:
			delete(h.Clients, id)
			client.Close()
			log.Printf("realtime: client %s too slow, dropped", id)
		}
	}
}
