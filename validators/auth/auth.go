package authValidator

import (
	"strings"

	"gyaandeepika/middleware"
	"gyaandeepika/services"
	"gyaandeepika/validators/common"

	"github.com/gofiber/fiber/v2"
)

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name" validate:"notblank,min=2,max=100"`
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required,min=8,max=72"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		reqData.Email = strings.TrimSpace(reqData.Email)

		if errors := common.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", &services.SignupInput{
			Name:     reqData.Name,
			Email:    reqData.Email,
			Password: reqData.Password,
		})
		return c.Next()
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		reqData.Email = strings.TrimSpace(reqData.Email)

		if errors := common.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
