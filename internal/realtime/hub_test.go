package realtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"participium/backend/internal/models"
	"participium/backend/internal/realtime"
)

// mockClient is a test double for the realtime.Client interface.
type mockClient struct {
	connID string
	userID uint
	rooms  map[string]struct{}
	send   chan models.RoomEvent
	closed bool
}

func newMockClient(connID string, userID uint, rooms ...string) *mockClient {
	c := &mockClient{
		connID: connID,
		userID: userID,
		rooms:  make(map[string]struct{}),
		send:   make(chan models.RoomEvent, 10),
	}
	for _, room := range rooms {
		c.rooms[room] = struct{}{}
	}
	return c
}

func (c *mockClient) GetConnID() string { return c.connID }
func (c *mockClient) GetUserID() uint   { return c.userID }

func (c *mockClient) InRoom(room string) bool {
	_, ok := c.rooms[room]
	return ok
}

func (c *mockClient) GetSendChannel() chan<- models.RoomEvent { return c.send }
func (c *mockClient) Run()                                    {}

func (c *mockClient) Close() {
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := realtime.NewHub(nil)
	go hub.Run()

	client := newMockClient("conn-1", 7, "user:7")

	hub.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, hub.Clients, "conn-1")

	hub.UnregisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.NotContains(t, hub.Clients, "conn-1")
	assert.True(t, client.closed)
}

func TestHub_BroadcastByRoom(t *testing.T) {
	hub := realtime.NewHub(nil)

	inRoom := newMockClient("conn-1", 7, "user:7", "report:1")
	otherRoom := newMockClient("conn-2", 8, "user:8")
	hub.Clients["conn-1"] = inRoom
	hub.Clients["conn-2"] = otherRoom

	go hub.Run()

	hub.EventCh <- models.RoomEvent{Room: "report:1", Event: "public-message:new"}
	time.Sleep(100 * time.Millisecond)

	select {
	case got := <-inRoom.send:
		assert.Equal(t, "public-message:new", got.Event)
	default:
		t.Error("client in room did not receive event")
	}

	select {
	case <-otherRoom.send:
		t.Error("client outside room received event")
	default:
	}
}
