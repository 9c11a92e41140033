package store

import (
	"errors"

	"gorm.io/gorm"

	"swimtrack/models"
)

type gormStore struct {
	db *gorm.DB
}

// New wraps a connected gorm database in the Store interface.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---- admin singleton ----

func (s *gormStore) GetAdmin() (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &admin, nil
}

func (s *gormStore) UpdateAdminAccount(id, account string) error {
	taken, err := s.AccountTaken(account, models.RoleAdmin, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateAccount
	}
	return s.db.Model(&models.Admin{}).Where("id = ?", id).
		Update("account", account).Error
}

func (s *gormStore) UpdateAdminPassword(id, passwordHash string) error {
	return s.db.Model(&models.Admin{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// ---- coaches ----

func (s *gormStore) GetCoach(id string) (*models.Coach, error) {
	var coach models.Coach
	if err := s.db.Where("id = ?", id).First(&coach).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &coach, nil
}

func (s *gormStore) GetCoachByAccount(account string) (*models.Coach, error) {
	var coach models.Coach
	if err := s.db.Where("account = ?", account).First(&coach).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &coach, nil
}

func (s *gormStore) ListCoaches() ([]models.Coach, error) {
	var coaches []models.Coach
	err := s.db.Order("created_at").Find(&coaches).Error
	return coaches, err
}

// CreateCoach writes the coach row together with its zeroed payroll row.
func (s *gormStore) CreateCoach(coach *models.Coach) error {
	taken, err := s.AccountTaken(coach.Account, "", "")
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateAccount
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(coach).Error; err != nil {
			return err
		}
		return tx.Create(&models.CoachEarned{CoachID: coach.ID, Amount: 0}).Error
	})
}

func (s *gormStore) UpdateCoachAccount(id, account string) error {
	taken, err := s.AccountTaken(account, models.RoleCoach, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateAccount
	}
	return s.db.Model(&models.Coach{}).Where("id = ?", id).
		Update("account", account).Error
}

func (s *gormStore) UpdateCoachPassword(id, passwordHash string) error {
	return s.db.Model(&models.Coach{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// DeleteCoach is a hard cutoff: payroll, enrollments, pending requests and
// historical attendance records all go with the coach.
func (s *gormStore) DeleteCoach(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("coach_id = ?", id).Delete(&models.CoachEarned{}).Error; err != nil {
			return err
		}
		if err := tx.Where("coach_id = ?", id).Delete(&models.CompletedSalaryDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("coach_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("coach_id = ?", id).Delete(&models.PendingAttendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("coach_id = ?", id).Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Coach{}).Error
	})
}

// ---- students ----

func (s *gormStore) GetStudent(id string) (*models.Student, error) {
	var student models.Student
	if err := s.db.Where("id = ?", id).First(&student).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &student, nil
}

func (s *gormStore) GetStudentByAccount(account string) (*models.Student, error) {
	var student models.Student
	if err := s.db.Where("account = ?", account).First(&student).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &student, nil
}

func (s *gormStore) ListStudents() ([]models.Student, error) {
	var students []models.Student
	err := s.db.Order("created_at").Find(&students).Error
	return students, err
}

func (s *gormStore) CreateStudent(student *models.Student) error {
	taken, err := s.AccountTaken(student.Account, "", "")
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateAccount
	}
	return s.db.Create(student).Error
}

func (s *gormStore) UpdateStudentAccount(id, account string) error {
	taken, err := s.AccountTaken(account, models.RoleStudent, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateAccount
	}
	return s.db.Model(&models.Student{}).Where("id = ?", id).
		Update("account", account).Error
}

func (s *gormStore) UpdateStudentPassword(id, passwordHash string) error {
	return s.db.Model(&models.Student{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (s *gormStore) DeleteStudent(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&models.PendingAttendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Student{}).Error
	})
}

// ---- account uniqueness ----

// AccountTaken checks the candidate account against the admin singleton and
// both principal tables. All three kinds share one namespace; the match is
// case-sensitive and exact.
func (s *gormStore) AccountTaken(account, excludeRole, excludeID string) (bool, error) {
	if excludeRole != models.RoleAdmin || excludeID == "" {
		var n int64
		if err := s.db.Model(&models.Admin{}).Where("account = ?", account).Count(&n).Error; err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}

	coachQ := s.db.Model(&models.Coach{}).Where("account = ?", account)
	if excludeRole == models.RoleCoach && excludeID != "" {
		coachQ = coachQ.Where("id != ?", excludeID)
	}
	var n int64
	if err := coachQ.Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	studentQ := s.db.Model(&models.Student{}).Where("account = ?", account)
	if excludeRole == models.RoleStudent && excludeID != "" {
		studentQ = studentQ.Where("id != ?", excludeID)
	}
	if err := studentQ.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ---- enrollments ----

func (s *gormStore) CreateEnrollment(enr *models.Enrollment) error {
	return s.db.Create(enr).Error
}

func (s *gormStore) GetEnrollment(id string) (*models.Enrollment, error) {
	var enr models.Enrollment
	if err := s.db.Where("id = ?", id).First(&enr).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &enr, nil
}

// ListEnrollments scopes the join by role: admin sees every row with both
// names, a coach sees its own rows with student name and contact, a student
// sees its own rows with the coach name. Coach and student views drop rows
// whose counterpart principal no longer exists.
func (s *gormStore) ListEnrollments(role, userID string) ([]EnrollmentRow, error) {
	var rows []EnrollmentRow

	base := "e.id, e.student_id, e.coach_id, e.course_name, e.total_lessons, e.remaining_lessons, e.salary_when_done"

	switch role {
	case models.RoleAdmin:
		err := s.db.Table("enrollments e").
			Select(base+", s.name as student_name, c.name as coach_name").
			Joins("LEFT JOIN students s ON s.id = e.student_id").
			Joins("LEFT JOIN coaches c ON c.id = e.coach_id").
			Order("e.created_at").
			Scan(&rows).Error
		return rows, err
	case models.RoleCoach:
		err := s.db.Table("enrollments e").
			Select(base+", s.name as student_name, s.contact").
			Joins("INNER JOIN students s ON s.id = e.student_id").
			Where("e.coach_id = ?", userID).
			Order("e.created_at").
			Scan(&rows).Error
		return rows, err
	default:
		err := s.db.Table("enrollments e").
			Select(base+", c.name as coach_name").
			Joins("INNER JOIN coaches c ON c.id = e.coach_id").
			Where("e.student_id = ?", userID).
			Order("e.created_at").
			Scan(&rows).Error
		return rows, err
	}
}

// ---- audit ----

func (s *gormStore) AppendAudit(entry *models.AuditLog) error {
	return s.db.Create(entry).Error
}
