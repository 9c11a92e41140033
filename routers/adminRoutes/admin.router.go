package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminController "swimtrack/controllers/admin"
	"swimtrack/middleware"
	"swimtrack/models"
	principalValidator "swimtrack/validators/principal"
)

func SetupAdminRoutes(app *fiber.App, ct *adminController.Controller) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Put("/account", principalValidator.Update(), ct.UpdateAccount)
	adminGroup.Post("/coaches/:id/confirm-pay", ct.ConfirmPay)
}
