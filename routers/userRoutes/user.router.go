package userRoutes

import (
	controllers "innoventum/controllers/users"
	"innoventum/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up self-service profile management
func SetupUserRoutes(app *fiber.App) {
	profileGroup := app.Group("/api/profile")

	profileGroup.Get("/", middleware.JWTMiddleware, controllers.GetProfile)
	profileGroup.Put("/", middleware.JWTMiddleware, controllers.UpdateProfile)
}
