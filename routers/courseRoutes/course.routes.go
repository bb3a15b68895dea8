package courseRoutes

import (
	controllers "innoventum/controllers/course"
	"innoventum/middleware"
	validators "innoventum/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the learner-facing catalog and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	kelasGroup := app.Group("/api/kelas")

	kelasGroup.Get("/", middleware.JWTMiddleware, validators.CourseList(), controllers.GetCatalog)
	kelasGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetail)

	// Enrollment
	kelasGroup.Post("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Material completion
	kelasGroup.Post("/:id/materi/:materialId/complete", middleware.JWTMiddleware, validators.CompleteMaterial(), controllers.MarkMaterialComplete)
}
