package aiController

import (
	"gyaandeepika/config"
	"gyaandeepika/database"
	"gyaandeepika/middleware"
	"gyaandeepika/services"
	aiValidator "gyaandeepika/validators/ai"

	"github.com/gofiber/fiber/v2"
)

func summaryService(completer services.Completer) *services.SummaryService {
	return services.NewSummaryService(database.Database.Db, completer, config.AppConfig.SummaryTTL)
}

// Summarize returns a cached or freshly generated summary of a lesson transcript
func Summarize(completer services.Completer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
		}
		ref := c.Locals("validatedContentRef").(*aiValidator.ContentRef)

		summary, err := summaryService(completer).Summarize(c.UserContext(), userID, ref.CourseID, ref.ContentID)
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary generated successfully!", summary)
	}
}

// Ask answers a question about a lesson transcript
func Ask(completer services.Completer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
		}
		ref := c.Locals("validatedContentRef").(*aiValidator.ContentRef)

		answer, err := summaryService(completer).Ask(c.UserContext(), userID, ref.CourseID, ref.ContentID, ref.Question)
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer generated successfully!", fiber.Map{
			"question": ref.Question,
			"answer":   answer,
		})
	}
}
