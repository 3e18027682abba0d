package routers

import (
	"strings"

	"gyaandeepika/config"
	"gyaandeepika/middleware"
	"gyaandeepika/routers/aiRoutes"
	"gyaandeepika/routers/authRoutes"
	"gyaandeepika/routers/courseRoutes"
	"gyaandeepika/routers/noteRoutes"
	"gyaandeepika/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the HTTP app with every route mounted under /api.
func NewApp(completer services.Completer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:           "gyaandeepika",
		ErrorHandler:      middleware.FiberErrorHandler,
		EnablePrintRoutes: !config.AppConfig.IsProduction(),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	if config.AppConfig.LogMode != "silent" {
		app.Use(fiberLogger.New(fiberLogger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})

	api := app.Group("/api")
	authRoutes.SetupAuthRoutes(api)
	courseRoutes.SetupCourseRoutes(api)
	courseRoutes.SetupAdminCourseRoutes(api)
	noteRoutes.SetupNoteRoutes(api)
	aiRoutes.SetupAIRoutes(api, completer)

	app.Use(func(c *fiber.Ctx) error {
		return middleware.ErrorJSON(c, fiber.StatusNotFound, "Route not found!")
	})
	return app
}

func corsOrigins() string {
	origins := strings.TrimSpace(config.AppConfig.CorsOrigins)
	if origins == "" {
		return "*"
	}
	return origins
}
