package mentorController

import (
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"

	"github.com/gofiber/fiber/v2"
)

// GetMentorDirectory lists active mentors for authenticated users.
func GetMentorDirectory(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var mentors []models.Mentor
	if err := database.Database.Db.
		Where("status = ?", models.MentorActive).
		Order("name asc").
		Find(&mentors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentors fetched successfully!", fiber.Map{
		"mentors": mentors,
	})
}
