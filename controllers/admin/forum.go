package adminController

import (
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	adminValidator "innoventum/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// GetThreadList lists forum threads for moderation.
func GetThreadList(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedThreadList").(*adminValidator.ThreadListQuery)
	if !ok {
		query = &adminValidator.ThreadListQuery{Page: 1, Limit: 10}
	}
	offset := (query.Page - 1) * query.Limit

	db := database.Database.Db.Model(&models.Thread{}).Where("is_deleted = ?", false)
	if query.Search != "" {
		db = db.Where("title LIKE ?", "%"+query.Search+"%")
	}

	var total int64
	db.Count(&total)

	var threads []models.Thread
	if err := db.Offset(offset).Limit(query.Limit).Order("created_at desc").Find(&threads).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch threads!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Threads fetched successfully!", fiber.Map{
		"threads": threads,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

// CreateThread creates a thread on behalf of a student (back-office path).
func CreateThread(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedThreadAdmin").(*adminValidator.CreateThreadAdminRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("id = ?", reqData.StudentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	thread := models.Thread{
		StudentID: student.ID,
		Title:     reqData.Title,
		Content:   reqData.Content,
	}

	if err := db.Create(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create thread!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thread created successfully!", thread)
}

// UpdateThread replaces a thread's title and content.
func UpdateThread(c *fiber.Ctx) error {
	threadID := c.Locals("threadID").(int)
	db := database.Database.Db

	var thread models.Thread
	if err := db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	reqData, ok := c.Locals("validatedThreadUpdate").(*adminValidator.UpdateThreadAdminRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	thread.Title = reqData.Title
	thread.Content = reqData.Content

	if err := db.Save(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update thread!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thread updated successfully!", thread)
}

// DeleteThread removes a thread and all its comments in one transaction.
func DeleteThread(c *fiber.Ctx) error {
	threadID := c.Locals("threadID").(int)
	db := database.Database.Db

	var thread models.Thread
	if err := db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	tx := db.Begin()
	if err := tx.Where("thread_id = ?", thread.ID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete thread!", nil)
	}
	thread.IsDeleted = true
	if err := tx.Save(&thread).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete thread!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thread deleted successfully!", nil)
}
