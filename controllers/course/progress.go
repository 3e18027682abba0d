package controllers

import (
	"gyaandeepika/database"
	"gyaandeepika/middleware"
	"gyaandeepika/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UpdateProgress records a watch event and returns the recomputed course progress
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	reqData := c.Locals("validatedProgress").(*services.RecordProgressInput)

	svc := services.NewProgressService(database.Database.Db)
	progress, err := svc.RecordProgress(c.UserContext(), userID, *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", progress)
}

// GetProgress returns the caller's stored progress for one course
func GetProgress(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}
	courseID := c.Locals("courseID").(uuid.UUID)

	svc := services.NewProgressService(database.Database.Db)
	progress, err := svc.GetProgress(c.UserContext(), userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

// GetLearningStats summarizes the caller's activity across courses
func GetLearningStats(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	svc := services.NewProgressService(database.Database.Db)
	stats, err := svc.Stats(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning stats fetched successfully!", stats)
}
