package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"swimtrack/middleware"
	"swimtrack/models"
	"swimtrack/store"
	authValidator "swimtrack/validators/auth"
)

type Controller struct {
	Store store.Store
}

func New(st store.Store) *Controller {
	return &Controller{Store: st}
}

// principal is the flattened login identity resolved across the admin,
// coach and student tables.
type principal struct {
	ID           string
	Name         string
	Role         string
	PasswordHash string
}

// findByAccount searches the shared account namespace: the admin singleton
// first, then coaches, then students.
func (ct *Controller) findByAccount(account string) (*principal, error) {
	admin, err := ct.Store.GetAdmin()
	if err == nil && admin.Account == account {
		return &principal{ID: admin.ID, Name: admin.Account, Role: models.RoleAdmin, PasswordHash: admin.PasswordHash}, nil
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	coach, err := ct.Store.GetCoachByAccount(account)
	if err == nil {
		return &principal{ID: coach.ID, Name: coach.Name, Role: models.RoleCoach, PasswordHash: coach.PasswordHash}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	student, err := ct.Store.GetStudentByAccount(account)
	if err == nil {
		return &principal{ID: student.ID, Name: student.Name, Role: models.RoleStudent, PasswordHash: student.PasswordHash}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return nil, store.ErrNotFound
}

// Login exchanges account+password for a bearer token.
func (ct *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("loginRequest").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	p, err := ct.findByAccount(reqData.Account)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}
		log.Printf("Error looking up account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(p.ID, p.Name, p.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":   p.ID,
			"name": p.Name,
			"role": p.Role,
		},
	})
}
