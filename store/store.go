package store

import (
	"errors"

	"swimtrack/models"
)

// Sentinel errors controllers translate into HTTP statuses.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateAccount = errors.New("account already in use")
	ErrLedgerExhausted  = errors.New("no lessons remaining")
	ErrPendingExists    = errors.New("attendance already pending")
)

// EnrollmentRow is an enrollment joined with the display names the caller's
// role is allowed to see.
type EnrollmentRow struct {
	ID               string `json:"id"`
	StudentID        string `json:"studentId"`
	CoachID          string `json:"coachId"`
	CourseName       string `json:"courseName"`
	TotalLessons     int    `json:"totalLessons"`
	RemainingLessons int    `json:"remainingLessons"`
	SalaryWhenDone   int64  `json:"salaryWhenDone"`
	StudentName      string `json:"studentName,omitempty"`
	CoachName        string `json:"coachName,omitempty"`
	Contact          string `json:"contact,omitempty"`
}

// ConfirmResult reports what a confirmed attendance did to the ledger.
type ConfirmResult struct {
	RecordID  string
	Remaining int
	Completed bool // this confirm took the enrollment to zero
}

// Store is the single persistence boundary. One implementation backed by
// gorm; the relational backend underneath is chosen at process start.
type Store interface {
	// admin singleton
	GetAdmin() (*models.Admin, error)
	UpdateAdminAccount(id, account string) error
	UpdateAdminPassword(id, passwordHash string) error

	// coaches
	GetCoach(id string) (*models.Coach, error)
	GetCoachByAccount(account string) (*models.Coach, error)
	ListCoaches() ([]models.Coach, error)
	CreateCoach(coach *models.Coach) error
	UpdateCoachAccount(id, account string) error
	UpdateCoachPassword(id, passwordHash string) error
	DeleteCoach(id string) error

	// students
	GetStudent(id string) (*models.Student, error)
	GetStudentByAccount(account string) (*models.Student, error)
	ListStudents() ([]models.Student, error)
	CreateStudent(student *models.Student) error
	UpdateStudentAccount(id, account string) error
	UpdateStudentPassword(id, passwordHash string) error
	DeleteStudent(id string) error

	// AccountTaken reports whether account is already held by any principal,
	// skipping the principal identified by excludeRole/excludeID (pass empty
	// strings when creating).
	AccountTaken(account, excludeRole, excludeID string) (bool, error)

	// enrollments
	CreateEnrollment(enr *models.Enrollment) error
	GetEnrollment(id string) (*models.Enrollment, error)
	ListEnrollments(role, userID string) ([]EnrollmentRow, error)

	// attendance workflow
	GetPending(id string) (*models.PendingAttendance, error)
	PendingByCoach(coachID string) ([]models.PendingAttendance, error)
	PendingByStudent(studentID string) ([]models.PendingAttendance, error)
	CreatePending(p *models.PendingAttendance) error
	DeletePending(id string) error
	ConfirmPending(p *models.PendingAttendance) (*ConfirmResult, error)
	AttendanceRecords(coachID, startDate, endDate string) ([]models.AttendanceRecord, error)

	// payroll
	CoachEarned(coachID string) (int64, error)
	SalaryDetails(coachID string) ([]models.CompletedSalaryDetail, error)
	CompletedEnrollments(coachID string) ([]EnrollmentRow, error)
	SettleCoach(coachID string) (int64, error)

	// audit
	AppendAudit(entry *models.AuditLog) error
}
