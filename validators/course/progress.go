package courseValidator

import (
	"math"

	"gyaandeepika/middleware"
	"gyaandeepika/services"
	"gyaandeepika/validators/common"

	"github.com/gofiber/fiber/v2"
)

type ProgressRequest struct {
	CourseID        string   `json:"courseId" validate:"required,uuid"`
	ContentID       string   `json:"contentId" validate:"required,uuid"`
	WatchedDuration *float64 `json:"watchedDuration" validate:"required,gte=0"`
	IsCompleted     *bool    `json:"isCompleted"`
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := common.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		if reqData.WatchedDuration != nil && (math.IsNaN(*reqData.WatchedDuration) || math.IsInf(*reqData.WatchedDuration, 0)) {
			errors["watchedDuration"] = "watchedDuration must be a finite number"
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

		c.Locals("validatedProgress", &services.RecordProgressInput{
			CourseID:        courseID,
			ContentID:       contentID,
			WatchedDuration: *reqData.WatchedDuration,
			IsCompleted:     reqData.IsCompleted,
		})
		return c.Next()
	}
}
