package enrollmentController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"swimtrack/audit"
	"swimtrack/middleware"
	"swimtrack/models"
	"swimtrack/store"
	enrollmentValidator "swimtrack/validators/enrollment"
)

type Controller struct {
	Store store.Store
	Audit *audit.Logger
}

func New(st store.Store, aud *audit.Logger) *Controller {
	return &Controller{Store: st, Audit: aud}
}

// List returns enrollments scoped to the caller's role.
func (ct *Controller) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	role, _ := c.Locals("userRole").(string)

	rows, err := ct.Store.ListEnrollments(role, userID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", rows)
}

// Create assigns a student to a coach for a course. Admin only. The
// remaining counter starts at the full lesson count.
func (ct *Controller) Create(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	reqData, ok := c.Locals("createEnrollment").(*enrollmentValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if _, err := ct.Store.GetStudent(reqData.StudentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		log.Printf("Error fetching student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	if _, err := ct.Store.GetCoach(reqData.CoachID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coach not found!", nil)
		}
		log.Printf("Error fetching coach: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	enr := &models.Enrollment{
		ID:               uuid.NewString(),
		StudentID:        reqData.StudentID,
		CoachID:          reqData.CoachID,
		CourseName:       reqData.CourseName,
		TotalLessons:     reqData.TotalLessons,
		RemainingLessons: reqData.TotalLessons,
		SalaryWhenDone:   reqData.SalaryWhenDone,
	}
	if err := ct.Store.CreateEnrollment(enr); err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
	}

	ct.Audit.Log(userID, models.RoleAdmin, audit.ActionCreateEnrollment, "enrollment", enr.ID, nil, fiber.Map{
		"studentId":    enr.StudentID,
		"coachId":      enr.CoachID,
		"courseName":   enr.CourseName,
		"totalLessons": enr.TotalLessons,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment created successfully.", fiber.Map{"id": enr.ID})
}
