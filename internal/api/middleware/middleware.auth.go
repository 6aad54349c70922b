package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
	"gotask_backend/internal/utility"
)

// AuthMiddleware validates the Bearer token and stores the claims on the
// request context. When auth is disabled by config the chain passes through.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if global.ServerConfig != nil && !global.ServerConfig.AuthEnabled {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return failAuth(c, common.ErrTokenMissing)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return failAuth(c, common.ErrTokenInvalid)
		}

		secret := ""
		if global.ServerConfig != nil {
			secret = global.ServerConfig.JwtSecret
		}
		claims, err := utility.ParseToken(secret, parts[1])
		if err != nil {
			return failAuth(c, err)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_role", claims.Role)
		return c.Next()
	}
}

func failAuth(c fiber.Ctx, err error) error {
	env := common.FromError(err)
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(env.StatusCode).JSON(env)
}
