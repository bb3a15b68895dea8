package adminValidator

import (
	"innoventum/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateThreadAdminRequest struct {
	StudentID uint   `json:"student_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type UpdateThreadAdminRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ThreadListQuery struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

func CreateThreadAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateThreadAdminRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StudentID == 0 {
			errors["student_id"] = "Student ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedThreadAdmin", reqData)
		return c.Next()
	}
}

func UpdateThreadAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "threadID", "Thread"); !ok {
			return err
		}

		reqData := new(UpdateThreadAdminRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedThreadUpdate", reqData)
		return c.Next()
	}
}

func ThreadAdminID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "threadID", "Thread"); !ok {
			return err
		}
		return c.Next()
	}
}

func ThreadAdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ThreadListQuery{
			Page:   c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 10),
			Search: strings.TrimSpace(c.Query("search")),
		}

		errors := make(map[string]string)

		if query.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedThreadList", query)
		return c.Next()
	}
}
