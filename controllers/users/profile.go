package userController

import (
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's account and role profile.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	data := fiber.Map{"user": user}
	switch user.Role {
	case models.RoleStudent:
		var student models.Student
		if err := db.Where("user_id = ?", user.ID).First(&student).Error; err == nil {
			data["student"] = student
		}
	case models.RoleAdmin:
		var admin models.Administrator
		if err := db.Where("user_id = ?", user.ID).First(&admin).Error; err == nil {
			data["admin"] = admin
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", data)
}

// UpdateProfile lets the caller change their own display fields.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := new(struct {
		Name         string `json:"name"`
		ProfileImage string `json:"profile_image"`
		Institution  string `json:"institution"`
		Program      string `json:"program"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Name) != "" {
		user.Name = strings.TrimSpace(reqData.Name)
	}
	if reqData.ProfileImage != "" {
		user.ProfileImage = reqData.ProfileImage
	}
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	if user.Role == models.RoleStudent && (reqData.Institution != "" || reqData.Program != "") {
		var student models.Student
		if err := db.Where("user_id = ?", user.ID).First(&student).Error; err == nil {
			if reqData.Institution != "" {
				student.Institution = reqData.Institution
			}
			if reqData.Program != "" {
				student.Program = reqData.Program
			}
			db.Save(&student)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
