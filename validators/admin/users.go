package adminValidator

import (
	"innoventum/middleware"
	"innoventum/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateUserRequest carries the shared identity fields plus the role-specific
// profile sub-fields. Student fields are required when role is STUDENT.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`

	// student profile
	NIM         string `json:"nim"`
	Institution string `json:"institution"`
	Program     string `json:"program"`
	Semester    int    `json:"semester"`

	// admin profile
	Position string `json:"position"`
}

type UpdateUserRequest struct {
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`

	NIM         string `json:"nim"`
	Institution string `json:"institution"`
	Program     string `json:"program"`
	Semester    *int   `json:"semester"`

	Position string `json:"position"`
}

type UserListQuery struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
	Role   string `json:"role"`
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		reqData.NIM = strings.TrimSpace(reqData.NIM)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fe.Field())] = "Invalid value for " + fe.Field() + "!"
			}
		}

		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		} else if reqData.Role != models.RoleStudent && reqData.Role != models.RoleAdmin {
			errors["role"] = "Role must be STUDENT or ADMIN!"
		}

		if reqData.Role == models.RoleStudent && reqData.NIM == "" {
			errors["nim"] = "NIM is required for student accounts!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "targetUserID", "User"); !ok {
			return err
		}

		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.NIM = strings.TrimSpace(reqData.NIM)

		if reqData.Semester != nil && *reqData.Semester < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"semester": "Semester must not be negative!",
			})
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}

func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := ParseIDParam(c, "id", "targetUserID", "User"); !ok {
			return err
		}
		return c.Next()
	}
}

func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &UserListQuery{
			Page:   c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 10),
			Search: strings.TrimSpace(c.Query("search")),
			Role:   strings.ToUpper(strings.TrimSpace(c.Query("role"))),
		}

		errors := make(map[string]string)

		if query.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.Role != "" && query.Role != models.RoleStudent && query.Role != models.RoleAdmin {
			errors["role"] = "Role must be STUDENT or ADMIN!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserList", query)
		return c.Next()
	}
}
