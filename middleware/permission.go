package middleware

import (
	"errors"

	"gyaandeepika/database"
	"gyaandeepika/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that lets through only users whose stored role matches
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := CurrentUserID(c)
		if !ok {
			return ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized: User ID not found")
		}

		// the token's role claim may be stale, so read the stored role
		var user models.User
		err := database.Database.Db.Select("id", "role").
			Where("id = ? AND is_deleted = ?", userID, false).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrorJSON(c, fiber.StatusUnauthorized, "User not found!")
			}
			return ErrorJSON(c, fiber.StatusInternalServerError, "Server error while checking permissions!")
		}
		if user.Role != role {
			return ErrorJSON(c, fiber.StatusForbidden, "You do not have permission to access this resource!")
		}
		return c.Next()
	}
}
