package authController

import (
	"gyaandeepika/config"
	"gyaandeepika/database"
	"gyaandeepika/middleware"
	"gyaandeepika/services"
	"gyaandeepika/utils/logger"
	authValidator "gyaandeepika/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func authService() *services.AuthService {
	return services.NewAuthService(database.Database.Db, config.AppConfig.SaltRound)
}

// Signup registers a learner and returns a token
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*services.SignupInput)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	user, err := authService().Signup(c.UserContext(), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		logger.Log.Error("failed to sign token", "userId", user.ID, "error", err)
		return middleware.ErrorJSON(c, fiber.StatusInternalServerError, "Failed to generate token!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Signup successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login checks the credentials and returns a token
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	user, err := authService().Login(c.UserContext(), reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		logger.Log.Error("failed to sign token", "userId", user.ID, "error", err)
		return middleware.ErrorJSON(c, fiber.StatusInternalServerError, "Failed to generate token!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
