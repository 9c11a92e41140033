package coachController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"swimtrack/audit"
	"swimtrack/config"
	"swimtrack/middleware"
	"swimtrack/models"
	"swimtrack/store"
	principalValidator "swimtrack/validators/principal"
)

type Controller struct {
	Store store.Store
	Audit *audit.Logger
}

func New(st store.Store, aud *audit.Logger) *Controller {
	return &Controller{Store: st, Audit: aud}
}

// canTouch reports whether the caller may read or modify the coach with
// the given id: admins always, coaches only themselves.
func canTouch(c *fiber.Ctx, coachID string) bool {
	role, _ := c.Locals("userRole").(string)
	userID, _ := c.Locals("userId").(string)
	if role == models.RoleAdmin {
		return true
	}
	return role == models.RoleCoach && userID == coachID
}

func (ct *Controller) List(c *fiber.Ctx) error {
	coaches, err := ct.Store.ListCoaches()
	if err != nil {
		log.Printf("Error fetching coaches: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch coaches!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coaches fetched successfully.", coaches)
}

func (ct *Controller) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if !canTouch(c, id) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}

	coach, err := ct.Store.GetCoach(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coach not found!", nil)
		}
		log.Printf("Error fetching coach: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch coach!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coach fetched successfully.", coach)
}

func (ct *Controller) Create(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	reqData, ok := c.Locals("createRequest").(*principalValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	coach := &models.Coach{
		ID:           uuid.NewString(),
		Name:         reqData.Name,
		Account:      reqData.Account,
		PasswordHash: string(hash),
	}
	if err := ct.Store.CreateCoach(coach); err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Account already in use!", nil)
		}
		log.Printf("Error creating coach: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create coach!", nil)
	}

	ct.Audit.Log(userID, models.RoleAdmin, audit.ActionCreate, "coach", coach.ID, nil,
		fiber.Map{"name": coach.Name, "account": coach.Account})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Coach created successfully.", fiber.Map{"id": coach.ID})
}

// Update renames the account and/or changes the password. Admin or the
// coach itself.
func (ct *Controller) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !canTouch(c, id) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}
	userID, _ := c.Locals("userId").(string)
	role, _ := c.Locals("userRole").(string)

	reqData, ok := c.Locals("updateRequest").(*principalValidator.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	coach, err := ct.Store.GetCoach(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coach not found!", nil)
		}
		log.Printf("Error fetching coach: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch coach!", nil)
	}

	if reqData.Account != "" && reqData.Account != coach.Account {
		if err := ct.Store.UpdateCoachAccount(id, reqData.Account); err != nil {
			if errors.Is(err, store.ErrDuplicateAccount) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Account already in use!", nil)
			}
			log.Printf("Error updating coach account: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update coach!", nil)
		}
		ct.Audit.Log(userID, role, audit.ActionUpdateAccount, "coach", id,
			fiber.Map{"account": coach.Account}, fiber.Map{"account": reqData.Account})
	}

	if reqData.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		if err := ct.Store.UpdateCoachPassword(id, string(hash)); err != nil {
			log.Printf("Error updating coach password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update coach!", nil)
		}
		ct.Audit.Log(userID, role, audit.ActionUpdatePassword, "coach", id, nil, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coach updated successfully.", nil)
}

// Delete removes the coach and all associated payroll, enrollment and
// attendance data.
func (ct *Controller) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userId").(string)

	coach, err := ct.Store.GetCoach(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coach not found!", nil)
		}
		log.Printf("Error fetching coach: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch coach!", nil)
	}

	if err := ct.Store.DeleteCoach(id); err != nil {
		log.Printf("Error deleting coach: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete coach!", nil)
	}

	ct.Audit.Log(userID, models.RoleAdmin, audit.ActionDelete, "coach", id,
		fiber.Map{"name": coach.Name, "account": coach.Account}, nil)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coach deleted successfully.", nil)
}

func (ct *Controller) Earned(c *fiber.Ctx) error {
	id := c.Params("id")
	if !canTouch(c, id) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}

	amount, err := ct.Store.CoachEarned(id)
	if err != nil {
		log.Printf("Error fetching coach earnings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch earnings!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched successfully.", fiber.Map{"amount": amount})
}

func (ct *Controller) SalaryDetails(c *fiber.Ctx) error {
	id := c.Params("id")
	if !canTouch(c, id) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}

	rows, err := ct.Store.SalaryDetails(id)
	if err != nil {
		log.Printf("Error fetching salary details: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch salary details!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Salary details fetched successfully.", rows)
}

func (ct *Controller) CompletedEnrollments(c *fiber.Ctx) error {
	id := c.Params("id")
	if !canTouch(c, id) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}

	rows, err := ct.Store.CompletedEnrollments(id)
	if err != nil {
		log.Printf("Error fetching completed enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completed enrollments!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completed enrollments fetched successfully.", rows)
}
