package controllers

import (
	"gyaandeepika/database"
	"gyaandeepika/middleware"
	"gyaandeepika/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnrollCourse adds the course to the caller's enrolled set
func EnrollCourse(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	courseID := c.Locals("courseID").(uuid.UUID)

	// Enroll and bump the course student count
	svc := services.NewEnrollmentService(database.Database.Db)
	if _, err := svc.Enroll(c.UserContext(), userID, courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"message":  "Successfully enrolled in course!",
		"courseId": courseID,
	})
}

// GetEnrolledCourses lists the caller's courses with their completion percentage
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	svc := services.NewEnrollmentService(database.Database.Db)
	courses, err := svc.ListEnrolled(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", courses)
}
