package adminController

import (
	"encoding/json"
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	adminValidator "innoventum/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func marshalLinks(links []string) datatypes.JSON {
	if links == nil {
		links = []string{}
	}
	raw, _ := json.Marshal(links)
	return datatypes.JSON(raw)
}

// GetProyekList lists business projects, optionally filtered by status.
func GetProyekList(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedProyekList").(*adminValidator.ProyekListQuery)
	if !ok {
		query = &adminValidator.ProyekListQuery{Page: 1, Limit: 10}
	}
	offset := (query.Page - 1) * query.Limit

	db := database.Database.Db.Model(&models.ProyekBisnis{})
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	db.Count(&total)

	var proyeks []models.ProyekBisnis
	if err := db.Offset(offset).Limit(query.Limit).Order("created_at desc").Find(&proyeks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"proyeks": proyeks,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

// CreateProyek records a business project for a student.
func CreateProyek(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProyek").(*adminValidator.CreateProyekRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("id = ?", reqData.StudentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	proyek := models.ProyekBisnis{
		StudentID:   student.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      reqData.Status,
		Links:       marshalLinks(reqData.Links),
	}

	if err := db.Create(&proyek).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", proyek)
}

// GetProyekDetail returns one business project.
func GetProyekDetail(c *fiber.Ctx) error {
	proyekID := c.Locals("proyekID").(int)

	var proyek models.ProyekBisnis
	if err := database.Database.Db.Where("id = ?", proyekID).First(&proyek).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project fetched successfully!", proyek)
}

// UpdateProyek partially updates a business project.
func UpdateProyek(c *fiber.Ctx) error {
	proyekID := c.Locals("proyekID").(int)
	db := database.Database.Db

	var proyek models.ProyekBisnis
	if err := db.Where("id = ?", proyekID).First(&proyek).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	reqData, ok := c.Locals("validatedProyekUpdate").(*adminValidator.UpdateProyekRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		proyek.Title = reqData.Title
	}
	if reqData.Description != "" {
		proyek.Description = reqData.Description
	}
	if reqData.Status != "" {
		proyek.Status = reqData.Status
	}
	if reqData.Links != nil {
		proyek.Links = marshalLinks(reqData.Links)
	}

	if err := db.Save(&proyek).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project updated successfully!", proyek)
}

// DeleteProyek removes a business project.
func DeleteProyek(c *fiber.Ctx) error {
	proyekID := c.Locals("proyekID").(int)
	db := database.Database.Db

	var proyek models.ProyekBisnis
	if err := db.Where("id = ?", proyekID).First(&proyek).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	if err := db.Delete(&proyek).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully!", nil)
}
