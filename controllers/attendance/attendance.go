package attendanceController

import (
	"errors"
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"swimtrack/audit"
	"swimtrack/middleware"
	"swimtrack/models"
	"swimtrack/store"
	attendanceValidator "swimtrack/validators/attendance"
)

type Controller struct {
	Store store.Store
	Audit *audit.Logger
}

func New(st store.Store, aud *audit.Logger) *Controller {
	return &Controller{Store: st, Audit: aud}
}

// Pending lists the caller's outstanding attendance requests. Coaches see
// requests awaiting their confirmation, students their own submissions.
func (ct *Controller) Pending(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	role, _ := c.Locals("userRole").(string)

	var (
		rows []models.PendingAttendance
		err  error
	)
	switch role {
	case models.RoleCoach:
		rows, err = ct.Store.PendingByCoach(userID)
	case models.RoleStudent:
		rows, err = ct.Store.PendingByStudent(userID)
	default:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}
	if err != nil {
		log.Printf("Error fetching pending attendances: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending attendances!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending attendances fetched successfully.", rows)
}

// Request creates a pending attendance on the caller's own enrollment.
func (ct *Controller) Request(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	reqData, ok := c.Locals("requestAttendance").(*attendanceValidator.RequestAttendance)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	enr, err := ct.Store.GetEnrollment(reqData.EnrollmentID)
	if err != nil || enr.RemainingLessons <= 0 {
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Printf("Error fetching enrollment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No lessons remaining on this enrollment!", nil)
	}
	if enr.StudentID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}

	student, err := ct.Store.GetStudent(userID)
	if err != nil {
		log.Printf("Error fetching student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	pending := &models.PendingAttendance{
		ID:           uuid.NewString(),
		EnrollmentID: enr.ID,
		StudentID:    enr.StudentID,
		CoachID:      enr.CoachID,
		CourseName:   enr.CourseName,
		StudentName:  student.Name,
		RequestedAt:  time.Now(),
	}
	if err := ct.Store.CreatePending(pending); err != nil {
		if errors.Is(err, store.ErrPendingExists) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Attendance already pending for this enrollment!", nil)
		}
		log.Printf("Error creating pending attendance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to request attendance!", nil)
	}

	ct.Audit.Log(userID, models.RoleStudent, audit.ActionRequestAttendance, "attendance", pending.ID, nil,
		fiber.Map{"enrollmentId": enr.ID, "courseName": enr.CourseName})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attendance requested.", fiber.Map{"id": pending.ID})
}

// Confirm consumes one lesson for a pending request owned by the calling
// coach. The ledger decrement, payroll accrual, record append and pending
// deletion are one store transaction.
func (ct *Controller) Confirm(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	pendingID, _ := c.Locals("pendingID").(string)

	pending, err := ct.Store.GetPending(pendingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Pending attendance not found!", nil)
		}
		log.Printf("Error fetching pending attendance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	if pending.CoachID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Permission denied!", nil)
	}

	res, err := ct.Store.ConfirmPending(pending)
	if err != nil {
		if errors.Is(err, store.ErrLedgerExhausted) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No lessons remaining on this enrollment!", nil)
		}
		log.Printf("Error confirming attendance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm attendance!", nil)
	}

	ct.Audit.Log(userID, models.RoleCoach, audit.ActionConfirmAttendance, "attendance", res.RecordID, nil,
		fiber.Map{"enrollmentId": pending.EnrollmentID, "studentName": pending.StudentName})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance confirmed.", fiber.Map{
		"recordId":  res.RecordID,
		"remaining": res.Remaining,
		"completed": res.Completed,
	})
}

// RecordWithLesson is an attendance record annotated with its 1-based
// position inside its enrollment.
type RecordWithLesson struct {
	models.AttendanceRecord
	LessonNumber int `json:"lessonNumber"`
}

// Records returns the calling coach's attendance history, optionally
// bounded by startDate/endDate (YYYY-MM-DD, inclusive).
func (ct *Controller) Records(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	rows, err := ct.Store.AttendanceRecords(userID, startDate, endDate)
	if err != nil {
		log.Printf("Error fetching attendance records: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attendance records!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance records fetched successfully.", NumberLessons(rows))
}

// NumberLessons assigns each record its lesson ordinal: records are grouped
// by enrollment and ranked by ascending confirmation time. The input order
// is preserved in the output; the ordinal does not depend on it.
func NumberLessons(records []models.AttendanceRecord) []RecordWithLesson {
	byEnrollment := make(map[string][]models.AttendanceRecord)
	for _, r := range records {
		byEnrollment[r.EnrollmentID] = append(byEnrollment[r.EnrollmentID], r)
	}

	ordinal := make(map[string]int, len(records))
	for _, group := range byEnrollment {
		sorted := make([]models.AttendanceRecord, len(group))
		copy(sorted, group)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].ConfirmedAt.Before(sorted[j].ConfirmedAt)
		})
		for i, r := range sorted {
			ordinal[r.ID] = i + 1
		}
	}

	out := make([]RecordWithLesson, 0, len(records))
	for _, r := range records {
		out = append(out, RecordWithLesson{AttendanceRecord: r, LessonNumber: ordinal[r.ID]})
	}
	return out
}
