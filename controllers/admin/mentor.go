package adminController

import (
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	adminValidator "innoventum/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// GetMentorList lists all mentors for the back office.
func GetMentorList(c *fiber.Ctx) error {
	var mentors []models.Mentor
	if err := database.Database.Db.Order("created_at desc").Find(&mentors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentors fetched successfully!", fiber.Map{
		"mentors": mentors,
	})
}

// CreateMentor adds a mentor directory entry.
func CreateMentor(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedMentor").(*adminValidator.CreateMentorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	mentor := models.Mentor{
		Name:      reqData.Name,
		Expertise: reqData.Expertise,
		Bio:       reqData.Bio,
		PhotoURL:  reqData.PhotoURL,
		Status:    models.MentorActive,
		CreatedBy: userID,
	}

	if err := database.Database.Db.Create(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Mentor created successfully!", mentor)
}

// UpdateMentor partially updates a mentor entry.
func UpdateMentor(c *fiber.Ctx) error {
	mentorID := c.Locals("mentorID").(int)
	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("id = ?", mentorID).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	reqData, ok := c.Locals("validatedMentorUpdate").(*adminValidator.UpdateMentorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		mentor.Name = reqData.Name
	}
	if reqData.Expertise != "" {
		mentor.Expertise = reqData.Expertise
	}
	if reqData.Bio != "" {
		mentor.Bio = reqData.Bio
	}
	if reqData.PhotoURL != "" {
		mentor.PhotoURL = reqData.PhotoURL
	}
	if reqData.Status != "" {
		mentor.Status = reqData.Status
	}

	if err := db.Save(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor updated successfully!", mentor)
}

// DeleteMentor removes a mentor entry.
func DeleteMentor(c *fiber.Ctx) error {
	mentorID := c.Locals("mentorID").(int)
	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("id = ?", mentorID).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	if err := db.Delete(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor deleted successfully!", nil)
}
