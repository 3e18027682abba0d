package controllers

import (
	"gyaandeepika/database"
	"gyaandeepika/middleware"
	"gyaandeepika/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetCourses lists the published catalog
func GetCourses(c *fiber.Ctx) error {
	filter := c.Locals("validatedCourseList").(*services.CourseFilter)

	svc := services.NewCatalogService(database.Database.Db)
	courses, total, err := svc.ListCourses(c.UserContext(), *filter)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   total,
		"page":    filter.Page,
		"limit":   filter.Limit,
	})
}

// GetCourseDetails returns a published course with its outline
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	svc := services.NewCatalogService(database.Database.Db)
	course, err := svc.GetCourse(c.UserContext(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
