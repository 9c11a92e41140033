package studentRoutes

import (
	"github.com/gofiber/fiber/v2"

	studentController "swimtrack/controllers/student"
	"swimtrack/middleware"
	"swimtrack/models"
	principalValidator "swimtrack/validators/principal"
)

func SetupStudentRoutes(app *fiber.App, ct *studentController.Controller) {
	studentGroup := app.Group("/students", middleware.JWTMiddleware)

	studentGroup.Get("/", middleware.RequireRole(models.RoleAdmin), ct.List)
	studentGroup.Post("/", middleware.RequireRole(models.RoleAdmin), principalValidator.Create(), ct.Create)
	studentGroup.Get("/:id", ct.Get)
	studentGroup.Put("/:id", principalValidator.Update(), ct.Update)
	studentGroup.Post("/:id/reset-password", middleware.RequireRole(models.RoleAdmin), principalValidator.ResetPassword(), ct.ResetPassword)
	studentGroup.Delete("/:id", middleware.RequireRole(models.RoleAdmin), ct.Delete)
}
