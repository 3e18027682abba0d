package courseValidator

import (
	"gyaandeepika/middleware"
	"gyaandeepika/services"
	"gyaandeepika/validators/common"

	"github.com/gofiber/fiber/v2"
)

// ContentParams validates :courseId and :contentId.
func ContentParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		courseID, ok := common.ParseUUID(c.Params("courseId"))
		if !ok {
			errors["courseId"] = "Invalid course ID!"
		}
		contentID, ok := common.ParseUUID(c.Params("contentId"))
		if !ok {
			errors["contentId"] = "Invalid content ID!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("contentID", contentID)
		return c.Next()
	}
}

type QuizSubmission struct {
	Answers []services.QuizAnswer `json:"answers"`
}

func SubmitQuiz() fiber.Handler {
	params := ContentParams()
	return func(c *fiber.Ctx) error {
		reqData := new(QuizSubmission)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
			}
		}
		if reqData.Answers == nil {
			reqData.Answers = []services.QuizAnswer{}
		}
		c.Locals("validatedQuizSubmission", reqData)
		return params(c)
	}
}
