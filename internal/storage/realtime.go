package storage

import (
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"participium/backend/internal/models"
)

// PublishEvent publishes a room event on the Redis channel named after
// the room. No delivery guarantee is assumed.
func (s *Service) PublishEvent(event models.RoomEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, event.Room, payload).Err()
}

// SubscribeRooms subscribes to every report room and every per-user
// notification channel.
func (s *Service) SubscribeRooms() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, "report:*", "user:*")
}
