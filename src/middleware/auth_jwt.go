package middleware

import (
	"strings"

	"github.com/Kenisaa/EncuestasConQR/src/utils"

	"github.com/gofiber/fiber/v2"
)

func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	// Un token con logout previo queda invalidado hasta que expire
	if blacklisted, _ := utils.IsTokenBlacklisted(claims.ID); blacklisted {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked")
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("jti", claims.ID)
	if claims.ExpiresAt != nil {
		c.Locals("tokenExp", claims.ExpiresAt.Time)
	}

	return c.Next()
}
