package aiValidator

import (
	"gyaandeepika/middleware"
	"gyaandeepika/validators/common"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContentRef struct {
	CourseID  uuid.UUID
	ContentID uuid.UUID
	Question  string
}

func parse(c *fiber.Ctx, withQuestion bool) (*ContentRef, map[string]string, error) {
	reqData := new(struct {
		CourseID  string `json:"courseId" validate:"required,uuid"`
		ContentID string `json:"contentId" validate:"required,uuid"`
		Question  string `json:"question" validate:"max=1000"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return nil, nil, err
	}
	errors := common.Struct(reqData)
	if errors == nil {
		errors = make(map[string]string)
	}
	if withQuestion && common.Validate.Var(reqData.Question, "notblank") != nil {
		errors["question"] = "Question is required!"
	}

	// the uuid tag lets the nil id through
	courseID, ok := common.ParseUUID(reqData.CourseID)
	if !ok && errors["courseId"] == "" {
		errors["courseId"] = "Invalid course ID!"
	}
	contentID, ok := common.ParseUUID(reqData.ContentID)
	if !ok && errors["contentId"] == "" {
		errors["contentId"] = "Invalid content ID!"
	}
	if len(errors) > 0 {
		return nil, errors, nil
	}
	return &ContentRef{CourseID: courseID, ContentID: contentID, Question: reqData.Question}, nil, nil
}

func Summary() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref, errors, err := parse(c, false)
		if err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedContentRef", ref)
		return c.Next()
	}
}

func Ask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref, errors, err := parse(c, true)
		if err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedContentRef", ref)
		return c.Next()
	}
}
