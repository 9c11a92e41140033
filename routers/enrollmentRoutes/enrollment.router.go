package enrollmentRoutes

import (
	"github.com/gofiber/fiber/v2"

	enrollmentController "swimtrack/controllers/enrollment"
	"swimtrack/middleware"
	"swimtrack/models"
	enrollmentValidator "swimtrack/validators/enrollment"
)

func SetupEnrollmentRoutes(app *fiber.App, ct *enrollmentController.Controller) {
	enrollmentGroup := app.Group("/enrollments", middleware.JWTMiddleware)

	enrollmentGroup.Get("/", ct.List)
	enrollmentGroup.Post("/", middleware.RequireRole(models.RoleAdmin), enrollmentValidator.Create(), ct.Create)
}
