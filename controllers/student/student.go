package studentController

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

// canTouch: admins always, students only themselves.
func canTouch(c *fiber.Ctx, studentID string) bool {
	role, _ := c.Locals("userRole").(string)
	userID, _ := c.Locals("userId").(string)
	if role == models.RoleAdmin {
		return true
	}
	return role == models.RoleStudent && userID == studentID
}

func (ct *Controller) List(c *fiber.Ctx) error {
	students, err := ct.Store.ListStudents()
	if err != nil {
		log.Printf("Error fetching students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully.", students)
}

func (ct *Controller) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if !canTouch(c, id) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}

	student, err := ct.Store.GetStudent(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		log.Printf("Error fetching student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully.", student)
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

	student := &models.Student{
		ID:           uuid.NewString(),
		Name:         reqData.Name,
		Account:      reqData.Account,
		PasswordHash: string(hash),
		Contact:      reqData.Contact,
	}
	if err := ct.Store.CreateStudent(student); err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Account already in use!", nil)
		}
		log.Printf("Error creating student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create student!", nil)
	}

	ct.Audit.Log(userID, models.RoleAdmin, audit.ActionCreate, "student", student.ID, nil,
		fiber.Map{"name": student.Name, "account": student.Account})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student created successfully.", fiber.Map{"id": student.ID})
}

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

	student, err := ct.Store.GetStudent(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		log.Printf("Error fetching student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	if reqData.Account != "" && reqData.Account != student.Account {
		if err := ct.Store.UpdateStudentAccount(id, reqData.Account); err != nil {
			if errors.Is(err, store.ErrDuplicateAccount) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Account already in use!", nil)
			}
			log.Printf("Error updating student account: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
		}
		ct.Audit.Log(userID, role, audit.ActionUpdateAccount, "student", id,
			fiber.Map{"account": student.Account}, fiber.Map{"account": reqData.Account})
	}

	if reqData.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		if err := ct.Store.UpdateStudentPassword(id, string(hash)); err != nil {
			log.Printf("Error updating student password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
		}
		ct.Audit.Log(userID, role, audit.ActionUpdatePassword, "student", id, nil, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully.", nil)
}

// ResetPassword lets the admin set a new password without knowing the old
// one.
func (ct *Controller) ResetPassword(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userId").(string)

	reqData, ok := c.Locals("resetPasswordRequest").(*principalValidator.ResetPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if _, err := ct.Store.GetStudent(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		log.Printf("Error fetching student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	if err := ct.Store.UpdateStudentPassword(id, string(hash)); err != nil {
		log.Printf("Error resetting student password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	ct.Audit.Log(userID, models.RoleAdmin, audit.ActionResetPassword, "student", id, nil, nil)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
}

func (ct *Controller) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userId").(string)

	student, err := ct.Store.GetStudent(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		}
		log.Printf("Error fetching student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	if err := ct.Store.DeleteStudent(id); err != nil {
		log.Printf("Error deleting student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete student!", nil)
	}

	ct.Audit.Log(userID, models.RoleAdmin, audit.ActionDelete, "student", id,
		fiber.Map{"name": student.Name, "account": student.Account}, nil)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted successfully.", nil)
}
