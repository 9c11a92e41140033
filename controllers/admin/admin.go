package adminController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
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

// UpdateAccount changes the admin singleton's account and/or password.
// The new account still has to be unique across coaches and students.
func (ct *Controller) UpdateAccount(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	reqData, ok := c.Locals("updateRequest").(*principalValidator.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	admin, err := ct.Store.GetAdmin()
	if err != nil {
		log.Printf("Error fetching admin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if reqData.Account != "" && reqData.Account != admin.Account {
		if err := ct.Store.UpdateAdminAccount(admin.ID, reqData.Account); err != nil {
			if errors.Is(err, store.ErrDuplicateAccount) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Account already in use!", nil)
			}
			log.Printf("Error updating admin account: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update account!", nil)
		}
		ct.Audit.Log(userID, models.RoleAdmin, audit.ActionUpdateAccount, "admin", admin.ID,
			fiber.Map{"account": admin.Account}, fiber.Map{"account": reqData.Account})
	}

	if reqData.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		if err := ct.Store.UpdateAdminPassword(admin.ID, string(hash)); err != nil {
			log.Printf("Error updating admin password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
		}
		ct.Audit.Log(userID, models.RoleAdmin, audit.ActionUpdatePassword, "admin", admin.ID, nil, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin account updated successfully.", nil)
}

// ConfirmPay settles a coach's payroll: zeroes the running total, purges
// the itemized details and removes completed enrollments from the active
// ledger. Returns the settled amount.
func (ct *Controller) ConfirmPay(c *fiber.Ctx) error {
	coachID := c.Params("id")
	userID, _ := c.Locals("userId").(string)

	coach, err := ct.Store.GetCoach(coachID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coach not found!", nil)
		}
		log.Printf("Error fetching coach: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	amount, err := ct.Store.SettleCoach(coachID)
	if err != nil {
		log.Printf("Error settling coach payroll: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to settle payroll!", nil)
	}

	ct.Audit.Log(userID, models.RoleAdmin, audit.ActionConfirmPay, "coach", coachID,
		fiber.Map{"amount": amount}, fiber.Map{"amount": 0, "coachName": coach.Name})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payroll settled successfully.", fiber.Map{"amount": amount})
}
