package controllers

import (
	"gyaandeepika/database"
	"gyaandeepika/middleware"
	"gyaandeepika/services"
	courseValidator "gyaandeepika/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetCourseContent returns the course tree annotated with the caller's progress
func GetCourseContent(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	courseID := c.Locals("courseID").(uuid.UUID)

	svc := services.NewContentService(database.Database.Db)
	view, err := svc.GetCourseContent(c.UserContext(), userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", view)
}

// GetQuiz returns a quiz item's questions without the answers
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	courseID := c.Locals("courseID").(uuid.UUID)
	contentID := c.Locals("contentID").(uuid.UUID)

	svc := services.NewContentService(database.Database.Db)
	quiz, err := svc.GetQuiz(c.UserContext(), userID, courseID, contentID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

// SubmitQuiz scores the caller's answers. Nothing is stored
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	courseID := c.Locals("courseID").(uuid.UUID)
	contentID := c.Locals("contentID").(uuid.UUID)
	reqData := c.Locals("validatedQuizSubmission").(*courseValidator.QuizSubmission)

	// Score against the stored answers
	svc := services.NewContentService(database.Database.Db)
	result, err := svc.SubmitQuiz(c.UserContext(), userID, courseID, contentID, reqData.Answers)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"score":   result.Score,
		"total":   result.Total,
		"results": result.Results,
	})
}
