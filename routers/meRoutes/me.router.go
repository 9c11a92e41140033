package meRoutes

import (
	"github.com/gofiber/fiber/v2"

	meController "swimtrack/controllers/me"
	"swimtrack/middleware"
	"swimtrack/models"
)

func SetupMeRoutes(app *fiber.App, ct *meController.Controller) {
	meGroup := app.Group("/me", middleware.JWTMiddleware)

	meGroup.Get("/", ct.Profile)
	meGroup.Get("/earned", middleware.RequireRole(models.RoleCoach), ct.Earned)
	meGroup.Get("/salary-details", middleware.RequireRole(models.RoleCoach), ct.SalaryDetails)
	meGroup.Get("/completed-enrollments", middleware.RequireRole(models.RoleCoach), ct.CompletedEnrollments)
}
