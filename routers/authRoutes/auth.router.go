package authRoutes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	authController "swimtrack/controllers/auth"
	authValidator "swimtrack/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, ct *authController.Controller) {
	authGroup := app.Group("/auth")

	// 5 attempts per minute per IP
	authGroup.Use(limiter.New(limiter.Config{
		Max:        5,
		Expiration: 60 * time.Second,
	}))

	authGroup.Post("/login", authValidator.Login(), ct.Login)
}
