package mentorRoutes

import (
	controllers "innoventum/controllers/mentor"
	"innoventum/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupMentorRoutes sets up the public mentor directory
func SetupMentorRoutes(app *fiber.App) {
	mentorGroup := app.Group("/api/mentor")

	mentorGroup.Get("/", middleware.JWTMiddleware, controllers.GetMentorDirectory)
}
