package middleware

import (
	"strings"

	"github.com/RentHaven/property_service/internal/domain"
	"github.com/RentHaven/property_service/internal/helper"
	"github.com/RentHaven/property_service/internal/repository"
	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// AuthMiddleware verifies the bearer token and attaches the full user record.
// Token claims carry only the user id, so the role check below needs the
// database row anyway.
func AuthMiddleware(auth helper.Auth, users repository.UserRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Get("Authorization"))

		userID, err := auth.VerifyAccessToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized",
			})
		}

		user, err := users.FindUserByID(userID)
		if err != nil || user == nil || !user.IsActive {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized",
			})
		}

		ctx.Locals(userLocal, user)
		return ctx.Next()
	}
}

// RequireRole gates a route to one role. A valid token with the wrong role
// gets 403, never 401.
func RequireRole(role domain.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, ok := CurrentUser(ctx)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized",
			})
		}

		if user.Role != role {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied",
			})
		}
		return ctx.Next()
	}
}

func LandlordOnly() fiber.Handler {
	return RequireRole(domain.RoleLandlord)
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(ctx *fiber.Ctx) (*domain.User, bool) {
	user, ok := ctx.Locals(userLocal).(*domain.User)
	return user, ok && user != nil
}
