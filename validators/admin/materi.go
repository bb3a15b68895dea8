package adminValidator

import (
	"innoventum/middleware"
	"innoventum/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidMaterialType(t string) bool {
	return t == models.MaterialVideo || t == models.MaterialDocument || t == models.MaterialExercise
}

type CreateMateriRequest struct {
	CourseID   uint   `json:"course_id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	ContentURL string `json:"content_url"`
	OrderIndex int    `json:"order_index"`
	Duration   *int   `json:"duration"`
}

type UpdateMateriRequest struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	ContentURL string `json:"content_url"`
	OrderIndex *int   `json:"order_index"`
	Duration   *int   `json:"duration"`
}

type MateriListQuery struct {
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	CourseID int `json:"course_id"`
}

func CreateMateri() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateMateriRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))
		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if !isValidMaterialType(reqData.Type) {
			errors["type"] = "Type must be VIDEO, DOCUMENT or EXERCISE!"
		}
		if strings.TrimSpace(reqData.ContentURL) == "" {
			errors["content_url"] = "Content URL is required!"
		}
		if reqData.OrderIndex < 1 {
			errors["order_index"] = "Order index must be greater than 0!"
		}
		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMateri", reqData)
		return c.Next()
	}
}

func UpdateMateri() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "materiID", "Material"); !ok {
			return err
		}

		reqData := new(UpdateMateriRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))
		errors := make(map[string]string)

		if reqData.Type != "" && !isValidMaterialType(reqData.Type) {
			errors["type"] = "Type must be VIDEO, DOCUMENT or EXERCISE!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 1 {
			errors["order_index"] = "Order index must be greater than 0!"
		}
		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMateriUpdate", reqData)
		return c.Next()
	}
}

func MateriID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "materiID", "Material"); !ok {
			return err
		}
		return c.Next()
	}
}

func MateriList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &MateriListQuery{
			Page:     c.QueryInt("page", 1),
			Limit:    c.QueryInt("limit", 10),
			CourseID: c.QueryInt("course_id", 0),
		}

		errors := make(map[string]string)

		if query.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.CourseID < 0 {
			errors["course_id"] = "Invalid Course ID!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMateriList", query)
		return c.Next()
	}
}
