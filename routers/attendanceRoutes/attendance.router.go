package attendanceRoutes

import (
	"github.com/gofiber/fiber/v2"

	attendanceController "swimtrack/controllers/attendance"
	"swimtrack/middleware"
	"swimtrack/models"
	attendanceValidator "swimtrack/validators/attendance"
)

func SetupAttendanceRoutes(app *fiber.App, ct *attendanceController.Controller) {
	attendanceGroup := app.Group("/attendances", middleware.JWTMiddleware)

	attendanceGroup.Get("/pending", ct.Pending)
	attendanceGroup.Post("/request", middleware.RequireRole(models.RoleStudent), attendanceValidator.Request(), ct.Request)
	attendanceGroup.Post("/confirm/:pendingId", middleware.RequireRole(models.RoleCoach), attendanceValidator.Confirm(), ct.Confirm)
	attendanceGroup.Get("/records", middleware.RequireRole(models.RoleCoach), ct.Records)
}
