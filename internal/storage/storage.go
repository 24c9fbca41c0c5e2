// Package storage implements persistence for the whole backend on top of
// PostgreSQL (GORM) and Redis (realtime pub/sub). Each core service
// declares the narrow interface it needs; *Service satisfies all of them.
package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Service is the concrete store shared by every component.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewService wires the store. rdb may be nil for tools that do not touch
// the realtime layer (the admin CLI).
func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
