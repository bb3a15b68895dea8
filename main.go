package main

import (
	"innoventum/config"
	"innoventum/database"
	adminRoutes "innoventum/routers/adminRoutes"
	authRoutes "innoventum/routers/authRoutes"
	courseRoutes "innoventum/routers/courseRoutes"
	forumRoutes "innoventum/routers/forumRoutes"
	mentorRoutes "innoventum/routers/mentorRoutes"
	userRoutes "innoventum/routers/userRoutes"
	"innoventum/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	forumRoutes.SetupForumRoutes(app)
	mentorRoutes.SetupMentorRoutes(app)
	userRoutes.SetupUserRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeReconciliationScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
