package authValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"swimtrack/middleware"
)

// LoginRequest is the validated login payload.
type LoginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Account = strings.TrimSpace(reqData.Account)
		if reqData.Account == "" {
			errors["account"] = "Account is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("loginRequest", reqData)
		return c.Next()
	}
}
