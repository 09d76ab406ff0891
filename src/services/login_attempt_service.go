package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/database"
)

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

func loginAttemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// IsRateLimited indica si un email agotó sus intentos de login.
// Sin Redis no hay rate limiting (modo desarrollo).
func IsRateLimited(email string) bool {
	if database.RedisClient == nil {
		return false
	}

	count, err := database.RedisClient.Get(database.RedisCtx, loginAttemptKey(email)).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime devuelve cuánto falta para poder reintentar
func GetRemainingCooldownTime(email string) time.Duration {
	if database.RedisClient == nil {
		return 0
	}

	ttl, err := database.RedisClient.TTL(database.RedisCtx, loginAttemptKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt registra un intento de login. Los intentos fallidos
// incrementan el contador; uno exitoso lo limpia.
func LogLoginAttempt(email, ip string, success bool) {
	if success {
		log.Printf("✅ Login successful: %s (ip=%s)", email, ip)
	} else {
		log.Printf("⚠️ Login failed: %s (ip=%s)", email, ip)
	}

	if database.RedisClient == nil {
		return
	}

	key := loginAttemptKey(email)
	if success {
		if err := database.RedisClient.Del(database.RedisCtx, key).Err(); err != nil {
			log.Println("⚠️ Failed to reset login attempts:", err)
		}
		return
	}

	count, err := database.RedisClient.Incr(database.RedisCtx, key).Result()
	if err != nil {
		log.Println("⚠️ Failed to count login attempt:", err)
		return
	}
	if count == 1 {
		database.RedisClient.Expire(database.RedisCtx, key, loginCooldown)
	}
}
