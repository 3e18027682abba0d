package notesValidator

import (
	"gyaandeepika/middleware"
	"gyaandeepika/services"
	"gyaandeepika/validators/common"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ListNotes() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		courseID, ok := common.ParseUUID(c.Params("courseId"))
		if !ok {
			errors["courseId"] = "Invalid course ID!"
		}

		var contentID *uuid.UUID
		if raw := c.Query("contentId"); raw != "" {
			id, ok := common.ParseUUID(raw)
			if !ok {
				errors["contentId"] = "Invalid content ID!"
			}
			contentID = &id
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("contentID", contentID)
		return c.Next()
	}
}

func SaveNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID       string  `json:"courseId" validate:"required,uuid"`
			ContentID      string  `json:"contentId" validate:"required,uuid"`
			Text           string  `json:"text" validate:"notblank,max=5000"`
			VideoTimestamp float64 `json:"videoTimestamp" validate:"gte=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		errors := common.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		courseID, ok := common.ParseUUID(reqData.CourseID)
		if !ok && errors["courseId"] == "" {
			errors["courseId"] = "Invalid course ID!"
		}
		contentID, ok := common.ParseUUID(reqData.ContentID)
		if !ok && errors["contentId"] == "" {
			errors["contentId"] = "Invalid content ID!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNote", &services.NoteInput{
			CourseID:       courseID,
			ContentID:      contentID,
			Text:           reqData.Text,
			VideoTimestamp: reqData.VideoTimestamp,
		})
		return c.Next()
	}
}

func DeleteNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := common.ParseUUID(c.Params("noteId"))
		if !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{"noteId": "Invalid note ID!"})
		}
		c.Locals("noteID", noteID)
		return c.Next()
	}
}
