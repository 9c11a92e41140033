package enrollmentValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"swimtrack/middleware"
)

var validate = validator.New()

type CreateRequest struct {
	StudentID      string `json:"studentId" validate:"required"`
	CoachID        string `json:"coachId" validate:"required"`
	CourseName     string `json:"courseName" validate:"required"`
	TotalLessons   int    `json:"totalLessons" validate:"required,gt=0"`
	SalaryWhenDone int64  `json:"salaryWhenDone" validate:"gte=0"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.CourseName = strings.TrimSpace(reqData.CourseName)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "StudentID":
					errors["studentId"] = "Student ID is required!"
				case "CoachID":
					errors["coachId"] = "Coach ID is required!"
				case "CourseName":
					errors["courseName"] = "Course name is required!"
				case "TotalLessons":
					errors["totalLessons"] = "Total lessons must be greater than 0!"
				case "SalaryWhenDone":
					errors["salaryWhenDone"] = "Salary must not be negative!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("createEnrollment", reqData)
		return c.Next()
	}
}
