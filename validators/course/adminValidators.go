package courseValidator

import (
	"gyaandeepika/middleware"
	"gyaandeepika/services"
	"gyaandeepika/validators/common"

	"github.com/gofiber/fiber/v2"
)

func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.CreateCourseInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors := common.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func PublishCourse() fiber.Handler {
	params := CourseParam()
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsPublished *bool `json:"isPublished" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors := common.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedPublish", *reqData.IsPublished)
		return params(c)
	}
}
