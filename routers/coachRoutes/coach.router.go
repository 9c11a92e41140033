package coachRoutes

import (
	"github.com/gofiber/fiber/v2"

	coachController "swimtrack/controllers/coach"
	"swimtrack/middleware"
	"swimtrack/models"
	principalValidator "swimtrack/validators/principal"
)

func SetupCoachRoutes(app *fiber.App, ct *coachController.Controller) {
	coachGroup := app.Group("/coaches", middleware.JWTMiddleware)

	coachGroup.Get("/", middleware.RequireRole(models.RoleAdmin), ct.List)
	coachGroup.Post("/", middleware.RequireRole(models.RoleAdmin), principalValidator.Create(), ct.Create)
	coachGroup.Get("/:id", ct.Get)
	coachGroup.Put("/:id", principalValidator.Update(), ct.Update)
	coachGroup.Delete("/:id", middleware.RequireRole(models.RoleAdmin), ct.Delete)

	coachGroup.Get("/:id/earned", ct.Earned)
	coachGroup.Get("/:id/salary-details", ct.SalaryDetails)
	coachGroup.Get("/:id/completed-enrollments", ct.CompletedEnrollments)
}
