package noteRoutes

import (
	notesController "gyaandeepika/controllers/notes"
	"gyaandeepika/middleware"
	notesValidator "gyaandeepika/validators/notes"

	"github.com/gofiber/fiber/v2"
)

func SetupNoteRoutes(app fiber.Router) {
	noteGroup := app.Group("/notes", middleware.JWTMiddleware)

	noteGroup.Put("/", notesValidator.SaveNote(), notesController.SaveNote)
	noteGroup.Get("/:courseId", notesValidator.ListNotes(), notesController.GetNotes)
	noteGroup.Delete("/:noteId", notesValidator.DeleteNote(), notesController.DeleteNote)
}
