package utils

import (
	"fmt"
	"time"

	DB "github.com/Kenisaa/EncuestasConQR/src/database"

	"github.com/redis/go-redis/v9"
)

// ensureClient returns the shared Redis client managed by the database package.
// If the database package didn't initialize Redis, this will return nil and
// callers should handle that case (they already do).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken agrega el jti de un token al blacklist (se usa en logout).
// Returns nil if Redis is not available (development mode)
func BlacklistToken(jti string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", jti)
	if err := client.Set(DB.RedisCtx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted verifica si un jti está en el blacklist.
// Returns false if Redis is not available (development mode - allow all tokens)
func IsTokenBlacklisted(jti string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", jti)
	if _, err := client.Get(DB.RedisCtx, key).Result(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
