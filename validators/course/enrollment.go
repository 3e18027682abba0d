package courseValidator

import (
	"gyaandeepika/middleware"
	"gyaandeepika/validators/common"

	"github.com/gofiber/fiber/v2"
)

// CourseParam validates the :courseId path parameter.
func CourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := common.ParseUUID(c.Params("courseId"))
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"courseId": "Invalid course ID!"})
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func EnrollCourse() fiber.Handler {
	return CourseParam()
}
