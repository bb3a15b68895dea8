package adminValidator

import (
	"innoventum/middleware"
	"innoventum/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidLevel(level string) bool {
	return level == models.LevelBeginner || level == models.LevelIntermediate || level == models.LevelAdvanced
}

func isValidCourseStatus(status string) bool {
	return status == models.CourseDraft || status == models.CoursePublished || status == models.CourseArchived
}

type CreateKursusRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Level        string `json:"level"`
	Duration     int    `json:"duration"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type UpdateKursusRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Level        string `json:"level"`
	Status       string `json:"status"`
	Duration     *int   `json:"duration"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type KursusListQuery struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Search   string `json:"search"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Status   string `json:"status"`
}

func CreateKursus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateKursusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Level = strings.ToUpper(strings.TrimSpace(reqData.Level))
		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if reqData.Level == "" {
			reqData.Level = models.LevelBeginner
		} else if !isValidLevel(reqData.Level) {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedKursus", reqData)
		return c.Next()
	}
}

func UpdateKursus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "kursusID", "Course"); !ok {
			return err
		}

		reqData := new(UpdateKursusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Level = strings.ToUpper(strings.TrimSpace(reqData.Level))
		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))
		errors := make(map[string]string)

		if reqData.Level != "" && !isValidLevel(reqData.Level) {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}
		if reqData.Status != "" && !isValidCourseStatus(reqData.Status) {
			errors["status"] = "Status must be DRAFT, PUBLISHED or ARCHIVED!"
		}
		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedKursusUpdate", reqData)
		return c.Next()
	}
}

func KursusID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "kursusID", "Course"); !ok {
			return err
		}
		return c.Next()
	}
}

func KursusList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &KursusListQuery{
			Page:     c.QueryInt("page", 1),
			Limit:    c.QueryInt("limit", 10),
			Search:   strings.TrimSpace(c.Query("search")),
			Category: strings.TrimSpace(c.Query("category")),
			Level:    strings.ToUpper(strings.TrimSpace(c.Query("level"))),
			Status:   strings.ToUpper(strings.TrimSpace(c.Query("status"))),
		}

		errors := make(map[string]string)

		if query.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.Level != "" && !isValidLevel(query.Level) {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}
		if query.Status != "" && !isValidCourseStatus(query.Status) {
			errors["status"] = "Status must be DRAFT, PUBLISHED or ARCHIVED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedKursusList", query)
		return c.Next()
	}
}

// ParseIDParam validates a positive integer path parameter and stashes it in
// c.Locals. On failure it writes the 400 response and returns ok=false along
// with that write's result, which the caller must propagate instead of
// calling c.Next().
func ParseIDParam(c *fiber.Ctx, param, localKey, label string) (int, bool, error) {
	raw := strings.TrimSpace(c.Params(param))
	if raw == "" {
		return 0, false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" ID is required!", nil)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+" ID!", nil)
	}

	c.Locals(localKey, id)
	return id, true, nil
}
