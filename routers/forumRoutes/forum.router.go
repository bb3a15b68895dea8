package forumRoutes

import (
	controllers "innoventum/controllers/forum"
	"innoventum/middleware"
	validators "innoventum/validators/forum"

	"github.com/gofiber/fiber/v2"
)

// SetupForumRoutes sets up the student-facing discussion forum
func SetupForumRoutes(app *fiber.App) {
	forumGroup := app.Group("/api/forum")

	forumGroup.Get("/", middleware.JWTMiddleware, validators.ThreadList(), controllers.GetThreads)
	forumGroup.Post("/", middleware.JWTMiddleware, validators.CreateThread(), controllers.CreateThread)
	forumGroup.Get("/:id", middleware.JWTMiddleware, validators.ThreadID(), controllers.GetThreadDetail)
	forumGroup.Post("/:id/komentar", middleware.JWTMiddleware, validators.CreateComment(), controllers.CreateComment)
	forumGroup.Delete("/:id", middleware.JWTMiddleware, validators.ThreadID(), controllers.DeleteThread)
}
