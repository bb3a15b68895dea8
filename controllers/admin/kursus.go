package adminController

import (
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	adminValidator "innoventum/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// GetKursusList lists courses for the back office with filters and paging.
func GetKursusList(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedKursusList").(*adminValidator.KursusListQuery)
	if !ok {
		query = &adminValidator.KursusListQuery{Page: 1, Limit: 10}
	}
	offset := (query.Page - 1) * query.Limit

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false)

	if query.Search != "" {
		db = db.Where("title LIKE ?", "%"+query.Search+"%")
	}
	if query.Category != "" {
		db = db.Where("category = ?", query.Category)
	}
	if query.Level != "" {
		db = db.Where("level = ?", query.Level)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(query.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

// CreateKursus creates a course in DRAFT status.
func CreateKursus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedKursus").(*adminValidator.CreateKursusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Level:        reqData.Level,
		Status:       models.CourseDraft,
		Duration:     reqData.Duration,
		ThumbnailURL: reqData.ThumbnailURL,
		CreatedBy:    userID,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetKursusDetail returns one course with its materials and enrollment count.
func GetKursusDetail(c *fiber.Ctx) error {
	courseID := c.Locals("kursusID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var materials []models.Material
	db.Where("course_id = ?", course.ID).Order("order_index asc").Find(&materials)

	var enrollmentCount int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":           course,
		"materials":        materials,
		"enrollment_count": enrollmentCount,
	})
}

// UpdateKursus updates the provided course fields.
func UpdateKursus(c *fiber.Ctx) error {
	courseID := c.Locals("kursusID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedKursusUpdate").(*adminValidator.UpdateKursusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteKursus removes a course and its materials. Deletion is rejected while
// any enrollment exists; nothing is mutated on rejection.
func DeleteKursus(c *fiber.Ctx) error {
	courseID := c.Locals("kursusID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollmentCount int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount)
	if enrollmentCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course has active enrollments and cannot be deleted!", nil)
	}

	tx := db.Begin()
	if err := tx.Where("course_id = ?", course.ID).Delete(&models.Material{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	course.IsDeleted = true
	if err := tx.Save(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
