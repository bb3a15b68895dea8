package courseValidator

import (
	"innoventum/middleware"
	"innoventum/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CatalogQuery struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Search   string `json:"search"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

// CourseList validates catalog query parameters, applying page=1 limit=10 defaults.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &CatalogQuery{
			Search:   strings.TrimSpace(c.Query("search")),
			Category: strings.TrimSpace(c.Query("category")),
			Level:    strings.ToUpper(strings.TrimSpace(c.Query("level"))),
		}

		query.Page = c.QueryInt("page", 1)
		query.Limit = c.QueryInt("limit", 10)

		errors := make(map[string]string)

		if query.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.Level != "" && query.Level != models.LevelBeginner && query.Level != models.LevelIntermediate && query.Level != models.LevelAdvanced {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCatalogQuery", query)
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CompleteMaterial validates the :id and :materialId path parameters.
func CompleteMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		materialID, err := strconv.Atoi(strings.TrimSpace(c.Params("materialId")))
		if err != nil || materialID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Material ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("materialID", materialID)
		return c.Next()
	}
}
