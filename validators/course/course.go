package courseValidator

import (
	"strings"

	"gyaandeepika/middleware"
	"gyaandeepika/services"

	"github.com/gofiber/fiber/v2"
)

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category string `query:"category"`
			Search   string `query:"search"`
			Page     *int   `query:"page"`
			Limit    *int   `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}

		errors := make(map[string]string)
		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		filter := &services.CourseFilter{
			Category: strings.TrimSpace(reqData.Category),
			Search:   strings.TrimSpace(reqData.Search),
			Page:     1,
			Limit:    10,
		}
		if reqData.Page != nil {
			filter.Page = *reqData.Page
		}
		if reqData.Limit != nil {
			filter.Limit = *reqData.Limit
		}
		c.Locals("validatedCourseList", filter)
		return c.Next()
	}
}
