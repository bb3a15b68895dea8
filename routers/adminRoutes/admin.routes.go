package adminRoutes

import (
	controllers "innoventum/controllers/admin"
	"innoventum/middleware"
	"innoventum/models"
	validators "innoventum/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the back-office CRUD surface. The role gate runs
// before any validator or handler, so non-admin callers never reach a query.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	// Dashboard
	adminGroup.Get("/dashboard", controllers.DashboardStats)

	// Course management
	adminGroup.Get("/kursus", validators.KursusList(), controllers.GetKursusList)
	adminGroup.Post("/kursus", validators.CreateKursus(), controllers.CreateKursus)
	adminGroup.Get("/kursus/:id", validators.KursusID(), controllers.GetKursusDetail)
	adminGroup.Put("/kursus/:id", validators.UpdateKursus(), controllers.UpdateKursus)
	adminGroup.Delete("/kursus/:id", validators.KursusID(), controllers.DeleteKursus)

	// Material management
	adminGroup.Get("/materi", validators.MateriList(), controllers.GetMateriList)
	adminGroup.Post("/materi", validators.CreateMateri(), controllers.CreateMateri)
	adminGroup.Patch("/materi/:id", validators.UpdateMateri(), controllers.UpdateMateri)
	adminGroup.Delete("/materi/:id", validators.MateriID(), controllers.DeleteMateri)

	// Mentor management
	adminGroup.Get("/mentor", controllers.GetMentorList)
	adminGroup.Post("/mentor", validators.CreateMentor(), controllers.CreateMentor)
	adminGroup.Patch("/mentor/:id", validators.UpdateMentor(), controllers.UpdateMentor)
	adminGroup.Delete("/mentor/:id", validators.MentorID(), controllers.DeleteMentor)

	// Forum moderation
	adminGroup.Get("/forum", validators.ThreadAdminList(), controllers.GetThreadList)
	adminGroup.Post("/forum", validators.CreateThreadAdmin(), controllers.CreateThread)
	adminGroup.Put("/forum/:id", validators.UpdateThreadAdmin(), controllers.UpdateThread)
	adminGroup.Delete("/forum/:id", validators.ThreadAdminID(), controllers.DeleteThread)

	// User management
	adminGroup.Get("/users", validators.UserList(), controllers.GetUserList)
	adminGroup.Post("/users", validators.CreateUser(), controllers.CreateUser)
	adminGroup.Get("/users/:id", validators.UserID(), controllers.GetUserDetail)
	adminGroup.Patch("/users/:id", validators.UpdateUser(), controllers.UpdateUser)
	adminGroup.Delete("/users/:id", validators.UserID(), controllers.DeleteUser)

	// Business projects
	adminGroup.Get("/proyek", validators.ProyekList(), controllers.GetProyekList)
	adminGroup.Post("/proyek", validators.CreateProyek(), controllers.CreateProyek)
	adminGroup.Get("/proyek/:id", validators.ProyekID(), controllers.GetProyekDetail)
	adminGroup.Patch("/proyek/:id", validators.UpdateProyek(), controllers.UpdateProyek)
	adminGroup.Delete("/proyek/:id", validators.ProyekID(), controllers.DeleteProyek)
}
