package controllers

import (
	"gyaandeepika/database"
	"gyaandeepika/middleware"
	"gyaandeepika/services"
	"gyaandeepika/utils/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminCreateCourse stores a course with its sections, items and quizzes. New courses start unpublished.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*services.CreateCourseInput)

	svc := services.NewCatalogService(database.Database.Db)
	course, err := svc.CreateCourse(c.UserContext(), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	logger.Log.Info("course created", "courseId", course.ID, "title", course.Title)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminPublishCourse toggles catalog visibility
func AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)
	published := c.Locals("validatedPublish").(bool)

	svc := services.NewCatalogService(database.Database.Db)
	if err := svc.SetPublished(c.UserContext(), courseID, published); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	msg := "Course unpublished successfully!"
	if published {
		msg = "Course published successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, msg, fiber.Map{
		"courseId":    courseID,
		"isPublished": published,
	})
}
