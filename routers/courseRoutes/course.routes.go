package courseRoutes

import (
	controllers "gyaandeepika/controllers/course"
	"gyaandeepika/middleware"
	validators "gyaandeepika/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the catalog, enrollment, content, quiz and progress routes.
// Static segments are registered ahead of /:courseId so they are not captured by it.
func SetupCourseRoutes(app fiber.Router) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", validators.CourseList(), controllers.GetCourses)

	// Enrollment
	courseGroup.Post("/enroll/:courseId", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollCourse)
	courseGroup.Get("/enrolled", middleware.JWTMiddleware, controllers.GetEnrolledCourses)
	courseGroup.Get("/enrolled/:courseId/content", middleware.JWTMiddleware, validators.CourseParam(), controllers.GetCourseContent)

	// Progress
	courseGroup.Put("/progress", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateProgress)
	courseGroup.Get("/progress/stats", middleware.JWTMiddleware, controllers.GetLearningStats)
	courseGroup.Get("/progress/:courseId", middleware.JWTMiddleware, validators.CourseParam(), controllers.GetProgress)

	// Quiz
	courseGroup.Get("/:courseId/:contentId/quiz", middleware.JWTMiddleware, validators.ContentParams(), controllers.GetQuiz)
	courseGroup.Post("/:courseId/:contentId/quiz/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)

	courseGroup.Get("/:courseId", validators.CourseParam(), controllers.GetCourseDetails)
}
