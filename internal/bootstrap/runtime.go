// Package bootstrap wires up runtime dependencies for the server process.
package bootstrap

import (
	"fmt"

	"academicworld/internal/cache"
	"academicworld/internal/config"
	"academicworld/internal/database"
	"academicworld/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis and ensures the configured
// admin account exists. The Redis client may come back nil when the server is
// unreachable; the app degrades to uncached reads.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := seed.EnsureAdmin(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap admin account: %w", err)
	}

	return db, r, nil
}
