package adminController

import (
	"errors"
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	"innoventum/utils"
	adminValidator "innoventum/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetMateriList lists materials, optionally scoped to one course.
func GetMateriList(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedMateriList").(*adminValidator.MateriListQuery)
	if !ok {
		query = &adminValidator.MateriListQuery{Page: 1, Limit: 10}
	}
	offset := (query.Page - 1) * query.Limit

	db := database.Database.Db.Model(&models.Material{})
	if query.CourseID > 0 {
		db = db.Where("course_id = ?", query.CourseID)
	}

	var total int64
	db.Count(&total)

	var materials []models.Material
	if err := db.Offset(offset).Limit(query.Limit).Order("course_id asc, order_index asc").Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully!", fiber.Map{
		"materials": materials,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

// CreateMateri adds a material to a course. The order index must be unique
// within the course; a conflicting index fails without mutating anything.
func CreateMateri(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMateri").(*adminValidator.CreateMateriRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.Material
	if err := db.Where("course_id = ? AND order_index = ?", reqData.CourseID, reqData.OrderIndex).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order index already used in this course!", nil)
	}

	material := models.Material{
		CourseID:   reqData.CourseID,
		Title:      reqData.Title,
		Type:       reqData.Type,
		ContentURL: reqData.ContentURL,
		OrderIndex: reqData.OrderIndex,
		Duration:   reqData.Duration,
	}

	if err := db.Create(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order index already used in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create material!", nil)
	}

	go utils.ProbeContentURL(material.ContentURL)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material created successfully!", material)
}

// UpdateMateri partially updates a material.
func UpdateMateri(c *fiber.Ctx) error {
	materialID := c.Locals("materiID").(int)
	db := database.Database.Db

	var material models.Material
	if err := db.Where("id = ?", materialID).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	reqData, ok := c.Locals("validatedMateriUpdate").(*adminValidator.UpdateMateriRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.OrderIndex != nil && *reqData.OrderIndex != material.OrderIndex {
		var existing models.Material
		if err := db.Where("course_id = ? AND order_index = ? AND id <> ?", material.CourseID, *reqData.OrderIndex, material.ID).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order index already used in this course!", nil)
		}
		material.OrderIndex = *reqData.OrderIndex
	}
	if reqData.Title != "" {
		material.Title = reqData.Title
	}
	if reqData.Type != "" {
		material.Type = reqData.Type
	}
	if reqData.ContentURL != "" {
		material.ContentURL = reqData.ContentURL
	}
	if reqData.Duration != nil {
		material.Duration = reqData.Duration
	}

	if err := db.Save(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order index already used in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update material!", nil)
	}

	go utils.ProbeContentURL(material.ContentURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material updated successfully!", material)
}

// DeleteMateri removes a material and its completion records.
func DeleteMateri(c *fiber.Ctx) error {
	materialID := c.Locals("materiID").(int)
	db := database.Database.Db

	var material models.Material
	if err := db.Where("id = ?", materialID).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	tx := db.Begin()
	if err := tx.Where("material_id = ?", material.ID).Delete(&models.MaterialCompletion{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}
	if err := tx.Delete(&material).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", nil)
}
