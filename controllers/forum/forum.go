package forumController

import (
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	forumValidator "innoventum/validators/forum"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func resolveStudent(userID uint) (models.Student, error) {
	var student models.Student
	err := database.Database.Db.Where("user_id = ?", userID).First(&student).Error
	return student, err
}

// GetThreads lists forum threads, newest first.
func GetThreads(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedThreadList").(*forumValidator.ThreadListQuery)
	if !ok {
		query = &forumValidator.ThreadListQuery{Page: 1, Limit: 10}
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

// CreateThread opens a new discussion thread for the calling student.
func CreateThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	student, err := resolveStudent(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only students can open threads!", nil)
	}

	reqData, ok := c.Locals("validatedThread").(*forumValidator.CreateThreadRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	thread := models.Thread{
		StudentID: student.ID,
		Title:     reqData.Title,
		Content:   reqData.Content,
	}

	if err := database.Database.Db.Create(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create thread!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thread created successfully!", thread)
}

// GetThreadDetail returns a thread with its comments and bumps the view count.
func GetThreadDetail(c *fiber.Ctx) error {
	threadID := c.Locals("threadID").(int)
	db := database.Database.Db

	var thread models.Thread
	if err := db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	// Atomic in-place increment, no read-modify-write. The counter is
	// advisory; a failed bump is logged and served stale.
	if err := db.Model(&models.Thread{}).Where("id = ?", thread.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		log.Printf("Error incrementing view count for thread %d: %v", thread.ID, err)
	} else {
		thread.ViewCount++
	}

	var comments []models.Comment
	if err := db.Where("thread_id = ?", thread.ID).Order("created_at asc").Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thread fetched successfully!", fiber.Map{
		"thread":   thread,
		"comments": comments,
	})
}

// CreateComment adds a reply; the denormalized counter moves in the same
// transaction as the insert so the two can never diverge on failure.
func CreateComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	student, err := resolveStudent(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only students can comment!", nil)
	}

	threadID := c.Locals("threadID").(int)
	db := database.Database.Db

	var thread models.Thread
	if err := db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*forumValidator.CreateCommentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	comment := models.Comment{
		ThreadID:  thread.ID,
		StudentID: student.ID,
		Content:   reqData.Content,
	}

	tx := db.Begin()
	if err := tx.Create(&comment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}
	if err := tx.Model(&models.Thread{}).Where("id = ?", thread.ID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment created successfully!", comment)
}

// DeleteThread lets the owning student (or an admin) remove a thread.
func DeleteThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	threadID := c.Locals("threadID").(int)
	db := database.Database.Db

	var thread models.Thread
	if err := db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	role, _ := c.Locals("userRole").(string)
	if role != models.RoleAdmin {
		student, err := resolveStudent(userID)
		if err != nil || student.ID != thread.StudentID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the thread owner can delete it!", nil)
		}
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
