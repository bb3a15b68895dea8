package adminValidator

import (
	"innoventum/middleware"
	"innoventum/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateMentorRequest struct {
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
}

type UpdateMentorRequest struct {
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	Status    string `json:"status"`
}

func CreateMentor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateMentorRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Expertise) == "" {
			errors["expertise"] = "Expertise is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMentor", reqData)
		return c.Next()
	}
}

func UpdateMentor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "mentorID", "Mentor"); !ok {
			return err
		}

		reqData := new(UpdateMentorRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))

		if reqData.Status != "" && reqData.Status != models.MentorActive && reqData.Status != models.MentorInactive {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be ACTIVE or INACTIVE!",
			})
		}

		c.Locals("validatedMentorUpdate", reqData)
		return c.Next()
	}
}

func MentorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "mentorID", "Mentor"); !ok {
			return err
		}
		return c.Next()
	}
}
