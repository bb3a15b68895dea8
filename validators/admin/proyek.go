package adminValidator

import (
	"innoventum/middleware"
	"innoventum/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidProyekStatus(status string) bool {
	switch status {
	case models.ProyekIdeas, models.ProyekPlanning, models.ProyekExecution, models.ProyekDone:
		return true
	}
	return false
}

type CreateProyekRequest struct {
	StudentID   uint     `json:"student_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Links       []string `json:"links"`
}

type UpdateProyekRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Links       []string `json:"links"`
}

type ProyekListQuery struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Status string `json:"status"`
}

func CreateProyek() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateProyekRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))
		errors := make(map[string]string)

		if reqData.StudentID == 0 {
			errors["student_id"] = "Student ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Status == "" {
			reqData.Status = models.ProyekIdeas
		} else if !isValidProyekStatus(reqData.Status) {
			errors["status"] = "Status must be IDEAS, PLANNING, EXECUTION or DONE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProyek", reqData)
		return c.Next()
	}
}

func UpdateProyek() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "proyekID", "Project"); !ok {
			return err
		}

		reqData := new(UpdateProyekRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))

		if reqData.Status != "" && !isValidProyekStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be IDEAS, PLANNING, EXECUTION or DONE!",
			})
		}

		c.Locals("validatedProyekUpdate", reqData)
		return c.Next()
	}
}

func ProyekID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "proyekID", "Project"); !ok {
			return err
		}
		return c.Next()
	}
}

func ProyekList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ProyekListQuery{
			Page:   c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 10),
			Status: strings.ToUpper(strings.TrimSpace(c.Query("status"))),
		}

		errors := make(map[string]string)

		if query.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.Status != "" && !isValidProyekStatus(query.Status) {
			errors["status"] = "Status must be IDEAS, PLANNING, EXECUTION or DONE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProyekList", query)
		return c.Next()
	}
}
