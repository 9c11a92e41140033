package meController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"swimtrack/middleware"
	"swimtrack/models"
	"swimtrack/store"
)

type Controller struct {
	Store store.Store
}

func New(st store.Store) *Controller {
	return &Controller{Store: st}
}

// Profile returns the caller's own record, shaped by role.
func (ct *Controller) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	role, _ := c.Locals("userRole").(string)

	switch role {
	case models.RoleAdmin:
		admin, err := ct.Store.GetAdmin()
		if err != nil {
			log.Printf("Error fetching admin profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", fiber.Map{
			"id": admin.ID, "account": admin.Account, "role": role,
		})
	case models.RoleCoach:
		coach, err := ct.Store.GetCoach(userID)
		if err != nil {
			return profileError(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", fiber.Map{
			"id": coach.ID, "name": coach.Name, "account": coach.Account, "role": role,
		})
	default:
		student, err := ct.Store.GetStudent(userID)
		if err != nil {
			return profileError(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", fiber.Map{
			"id": student.ID, "name": student.Name, "account": student.Account, "contact": student.Contact, "role": role,
		})
	}
}

func profileError(c *fiber.Ctx, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}
	log.Printf("Error fetching profile: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
}

// Earned is the coach's own running payroll total.
func (ct *Controller) Earned(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	amount, err := ct.Store.CoachEarned(userID)
	if err != nil {
		log.Printf("Error fetching earnings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch earnings!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched successfully.", fiber.Map{"amount": amount})
}

func (ct *Controller) SalaryDetails(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	rows, err := ct.Store.SalaryDetails(userID)
	if err != nil {
		log.Printf("Error fetching salary details: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch salary details!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Salary details fetched successfully.", rows)
}

func (ct *Controller) CompletedEnrollments(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	rows, err := ct.Store.CompletedEnrollments(userID)
	if err != nil {
		log.Printf("Error fetching completed enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completed enrollments!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completed enrollments fetched successfully.", rows)
}
