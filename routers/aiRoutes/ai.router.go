package aiRoutes

import (
	aiController "gyaandeepika/controllers/ai"
	"gyaandeepika/middleware"
	"gyaandeepika/services"
	aiValidator "gyaandeepika/validators/ai"

	"github.com/gofiber/fiber/v2"
)

func SetupAIRoutes(app fiber.Router, completer services.Completer) {
	aiGroup := app.Group("/ai", middleware.JWTMiddleware)

	aiGroup.Post("/summary", aiValidator.Summary(), aiController.Summarize(completer))
	aiGroup.Post("/ask", aiValidator.Ask(), aiController.Ask(completer))
}
