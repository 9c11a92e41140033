package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swimtrack/models"
)

func (s *gormStore) GetPending(id string) (*models.PendingAttendance, error) {
	var p models.PendingAttendance
	if err := s.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &p, nil
}

func (s *gormStore) PendingByCoach(coachID string) ([]models.PendingAttendance, error) {
	var rows []models.PendingAttendance
	err := s.db.Where("coach_id = ?", coachID).Order("requested_at").Find(&rows).Error
	return rows, err
}

func (s *gormStore) PendingByStudent(studentID string) ([]models.PendingAttendance, error) {
	var rows []models.PendingAttendance
	err := s.db.Where("student_id = ?", studentID).Order("requested_at").Find(&rows).Error
	return rows, err
}

// CreatePending enforces the at-most-one-pending-per-enrollment rule. The
// uniqueIndex on enrollment_id backs up the pre-check under races.
func (s *gormStore) CreatePending(p *models.PendingAttendance) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.PendingAttendance{}).
			Where("enrollment_id = ?", p.EnrollmentID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrPendingExists
		}
		return tx.Create(p).Error
	})
}

func (s *gormStore) DeletePending(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.PendingAttendance{}).Error
}

// ConfirmPending consumes one lesson for the pending request's enrollment.
// Decrement, payroll accrual on completion, record append and pending
// deletion commit together or not at all. If the enrollment is gone or
// exhausted the pending row is discarded and ErrLedgerExhausted returned
// with no other mutation.
func (s *gormStore) ConfirmPending(p *models.PendingAttendance) (*ConfirmResult, error) {
	res := &ConfirmResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var enr models.Enrollment
		if err := tx.Where("id = ?", p.EnrollmentID).First(&enr).Error; err != nil {
			return wrapNotFound(err)
		}
		if enr.RemainingLessons <= 0 {
			return ErrLedgerExhausted
		}

		// Guarded decrement: a racing confirm that already consumed the last
		// lesson makes this a no-op and we bail out.
		upd := tx.Model(&models.Enrollment{}).
			Where("id = ? AND remaining_lessons > 0", enr.ID).
			UpdateColumn("remaining_lessons", gorm.Expr("remaining_lessons - 1"))
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrLedgerExhausted
		}

		remaining := enr.RemainingLessons - 1
		res.Remaining = remaining

		// The == 0 transition fires exactly once per enrollment.
		if remaining == 0 {
			res.Completed = true
			earn := tx.Model(&models.CoachEarned{}).
				Where("coach_id = ?", p.CoachID).
				UpdateColumn("amount", gorm.Expr("amount + ?", enr.SalaryWhenDone))
			if earn.Error != nil {
				return earn.Error
			}
			if earn.RowsAffected == 0 {
				row := models.CoachEarned{CoachID: p.CoachID, Amount: enr.SalaryWhenDone}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
			detail := models.CompletedSalaryDetail{
				CoachID:     p.CoachID,
				StudentName: p.StudentName,
				CourseName:  p.CourseName,
				CompletedAt: time.Now(),
				Amount:      enr.SalaryWhenDone,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}

		record := models.AttendanceRecord{
			ID:           uuid.NewString(),
			EnrollmentID: p.EnrollmentID,
			StudentID:    p.StudentID,
			CoachID:      p.CoachID,
			StudentName:  p.StudentName,
			CourseName:   p.CourseName,
			ConfirmedAt:  time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		res.RecordID = record.ID

		// Deleting the pending row in the same transaction is what makes a
		// confirm at-most-once: the loser of a race deletes nothing and
		// rolls everything back.
		del := tx.Where("id = ?", p.ID).Delete(&models.PendingAttendance{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return ErrLedgerExhausted
		}
		return nil
	})

	if errors.Is(err, ErrLedgerExhausted) || errors.Is(err, ErrNotFound) {
		// Stale request: drop it so the student can see the enrollment is
		// spent. Intentionally outside the rolled-back transaction.
		if delErr := s.DeletePending(p.ID); delErr != nil {
			return nil, delErr
		}
		return nil, ErrLedgerExhausted
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AttendanceRecords returns a coach's records ordered by confirmation time.
// startDate/endDate are inclusive YYYY-MM-DD bounds compared against the
// record's local date, matching how the store has always filtered.
func (s *gormStore) AttendanceRecords(coachID, startDate, endDate string) ([]models.AttendanceRecord, error) {
	var rows []models.AttendanceRecord
	if err := s.db.Where("coach_id = ?", coachID).Order("confirmed_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	if startDate == "" && endDate == "" {
		return rows, nil
	}

	filtered := rows[:0]
	for _, r := range rows {
		day := r.ConfirmedAt.Format("2006-01-02")
		if startDate != "" && day < startDate {
			continue
		}
		if endDate != "" && day > endDate {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}
