package principalValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"swimtrack/middleware"
)

var validate = validator.New()

// CreateRequest covers both coach and student creation; Contact is only
// meaningful for students and ignored for coaches.
type CreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	Contact  string `json:"contact"`
}

// UpdateRequest carries an optional account rename and/or password change.
type UpdateRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// ResetPasswordRequest is the admin-driven student password reset.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Account = strings.TrimSpace(reqData.Account)
		reqData.Contact = strings.TrimSpace(reqData.Contact)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Name":
					errors["name"] = "Name is required!"
				case "Account":
					errors["account"] = "Account is required!"
				case "Password":
					errors["password"] = "Password must be at least 4 characters long!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("createRequest", reqData)
		return c.Next()
	}
}

// Update validator middleware. Both fields are optional but at least one
// must be present.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Account = strings.TrimSpace(reqData.Account)

		if reqData.Account == "" && reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Nothing to update!", nil)
		}

		c.Locals("updateRequest", reqData)
		return c.Next()
	}
}

// ResetPassword validator middleware
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetPasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.NewPassword = strings.TrimSpace(reqData.NewPassword)
		if reqData.NewPassword == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "New password is required!", nil)
		}

		c.Locals("resetPasswordRequest", reqData)
		return c.Next()
	}
}
