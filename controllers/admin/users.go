package adminController

import (
	"errors"
	"innoventum/config"
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	adminValidator "innoventum/validators/admin"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userWithProfile struct {
	models.User
	Student *models.Student       `json:"student,omitempty"`
	Admin   *models.Administrator `json:"admin,omitempty"`
}

func attachProfile(db *gorm.DB, user models.User) userWithProfile {
	out := userWithProfile{User: user}
	switch user.Role {
	case models.RoleStudent:
		var student models.Student
		if err := db.Where("user_id = ?", user.ID).First(&student).Error; err == nil {
			out.Student = &student
		}
	case models.RoleAdmin:
		var admin models.Administrator
		if err := db.Where("user_id = ?", user.ID).First(&admin).Error; err == nil {
			out.Admin = &admin
		}
	}
	return out
}

// GetUserList lists accounts with their role-specific profiles.
func GetUserList(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedUserList").(*adminValidator.UserListQuery)
	if !ok {
		query = &adminValidator.UserListQuery{Page: 1, Limit: 10}
	}
	offset := (query.Page - 1) * query.Limit

	db := database.Database.Db
	listDb := db.Model(&models.User{}).Where("is_deleted = ?", false)
	if query.Search != "" {
		listDb = listDb.Where("name LIKE ? OR email LIKE ?", "%"+query.Search+"%", "%"+query.Search+"%")
	}
	if query.Role != "" {
		listDb = listDb.Where("role = ?", query.Role)
	}

	var total int64
	listDb.Count(&total)

	var users []models.User
	if err := listDb.Offset(offset).Limit(query.Limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	result := make([]userWithProfile, 0, len(users))
	for _, u := range users {
		result = append(result, attachProfile(db, u))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

// CreateUser provisions an account plus its role profile in one transaction.
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*adminValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}
	if reqData.Role == models.RoleStudent {
		if err := db.Where("nim = ?", reqData.NIM).First(&models.Student{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "NIM is already registered!", nil)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Role:     reqData.Role,
		Password: string(hashedPassword),
	}

	tx := db.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	switch user.Role {
	case models.RoleStudent:
		student := models.Student{
			UserID:      user.ID,
			NIM:         reqData.NIM,
			Institution: reqData.Institution,
			Program:     reqData.Program,
			Semester:    reqData.Semester,
		}
		if err := tx.Create(&student).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "NIM is already registered!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
		}
	case models.RoleAdmin:
		admin := models.Administrator{
			UserID:   user.ID,
			Position: reqData.Position,
		}
		if err := tx.Create(&admin).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", attachProfile(db, user))
}

// GetUserDetail returns one account with its profile.
func GetUserDetail(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(int)
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", attachProfile(db, user))
}

// UpdateUser partially updates an account and its role profile.
func UpdateUser(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(int)
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedUserUpdate").(*adminValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// All conflict checks run before any write so a rejection mutates nothing
	var student models.Student
	hasStudent := false
	if user.Role == models.RoleStudent {
		if err := db.Where("user_id = ?", user.ID).First(&student).Error; err == nil {
			hasStudent = true
			if reqData.NIM != "" && reqData.NIM != student.NIM {
				var existing models.Student
				if err := db.Where("nim = ? AND id <> ?", reqData.NIM, student.ID).First(&existing).Error; err == nil {
					return middleware.JsonResponse(c, fiber.StatusConflict, false, "NIM is already registered!", nil)
				}
			}
		}
	}

	var admin models.Administrator
	hasAdmin := false
	if user.Role == models.RoleAdmin {
		if err := db.Where("user_id = ?", user.ID).First(&admin).Error; err == nil {
			hasAdmin = true
		}
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.ProfileImage != "" {
		user.ProfileImage = reqData.ProfileImage
	}
	if hasStudent {
		if reqData.NIM != "" {
			student.NIM = reqData.NIM
		}
		if reqData.Institution != "" {
			student.Institution = reqData.Institution
		}
		if reqData.Program != "" {
			student.Program = reqData.Program
		}
		if reqData.Semester != nil {
			student.Semester = *reqData.Semester
		}
	}
	if hasAdmin && reqData.Position != "" {
		admin.Position = reqData.Position
	}

	tx := db.Begin()
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}
	if hasStudent {
		if err := tx.Save(&student).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "NIM is already registered!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
		}
	}
	if hasAdmin {
		if err := tx.Save(&admin).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", attachProfile(db, user))
}

// DeleteUser soft deletes an account.
func DeleteUser(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(int)
	db := database.Database.Db

	userID, _ := c.Locals("userId").(uint)
	if uint(targetUserID) == userID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot delete your own account!", nil)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsDeleted = true
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
