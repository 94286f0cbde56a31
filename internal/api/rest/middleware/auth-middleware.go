package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("userID", user.UserID)
		ctx.Locals("role", user.Role)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// RequireRole gates a route group to one account role. Role comes from
// the verified token, not the request body.
func RequireRole(role domain.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ctx.Locals("user").(dto.AuthClaims)
		if !ok || claims.UserID == 0 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		if domain.Role(claims.Role) != role {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": string(role) + " only",
			})
		}

		return ctx.Next()
	}
}

func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
