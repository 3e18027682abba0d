package courseRoutes

import (
	controllers "gyaandeepika/controllers/course"
	"gyaandeepika/middleware"
	"gyaandeepika/models"
	validators "gyaandeepika/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the admin catalog management routes
func SetupAdminCourseRoutes(app fiber.Router) {
	adminGroup := app.Group("/admin/courses", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Post("/", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Patch("/:courseId/publish", validators.PublishCourse(), controllers.AdminPublishCourse)
}
