package attendanceValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"swimtrack/middleware"
)

type RequestAttendance struct {
	EnrollmentID string `json:"enrollmentId"`
}

// Request validator middleware
func Request() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RequestAttendance)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.EnrollmentID = strings.TrimSpace(reqData.EnrollmentID)
		if reqData.EnrollmentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		c.Locals("requestAttendance", reqData)
		return c.Next()
	}
}

// Confirm validates the pending id path parameter.
func Confirm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pendingID := strings.TrimSpace(c.Params("pendingId"))
		if pendingID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Pending ID is required!", nil)
		}

		c.Locals("pendingID", pendingID)
		return c.Next()
	}
}
