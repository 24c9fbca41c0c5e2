package models

import "encoding/json"

// RoomEvent is one realtime event addressed to a room, either a report
// room or a per-user notification room. It travels
// through Redis pub/sub so every server instance can forward it to its
// connected WebSocket clients.
type RoomEvent struct {
	Room    string          `json:"room"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}
