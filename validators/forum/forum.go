package forumValidator

import (
	"innoventum/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type ThreadListQuery struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

func CreateThread() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateThreadRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedThread", reqData)
		return c.Next()
	}
}

func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseThreadID(c); !ok {
			return err
		}

		reqData := new(CreateCommentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Content) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Content is required!",
			})
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}

func ThreadID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseThreadID(c); !ok {
			return err
		}
		return c.Next()
	}
}

func ThreadList() fiber.Handler {
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

func parseThreadID(c *fiber.Ctx) (bool, error) {
	raw := strings.TrimSpace(c.Params("id"))
	if raw == "" {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thread ID is required!", nil)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Thread ID!", nil)
	}

	c.Locals("threadID", id)
	return true, nil
}
