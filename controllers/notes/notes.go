package notesController

import (
	"gyaandeepika/database"
	"gyaandeepika/middleware"
	"gyaandeepika/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetNotes(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	courseID := c.Locals("courseID").(uuid.UUID)
	contentID, _ := c.Locals("contentID").(*uuid.UUID)

	svc := services.NewNoteService(database.Database.Db)
	notes, err := svc.List(c.UserContext(), userID, courseID, contentID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", notes)
}

// SaveNote creates or replaces the caller's note for a content item
func SaveNote(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	reqData := c.Locals("validatedNote").(*services.NoteInput)

	svc := services.NewNoteService(database.Database.Db)
	note, err := svc.Upsert(c.UserContext(), userID, *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note saved successfully!", note)
}

func DeleteNote(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	noteID := c.Locals("noteID").(uuid.UUID)

	svc := services.NewNoteService(database.Database.Db)
	if err := svc.Delete(c.UserContext(), userID, noteID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note deleted successfully!", nil)
}
