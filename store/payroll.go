package store

import (
	"errors"

	"gorm.io/gorm"

	"swimtrack/models"
)

// CoachEarned reads the running total; a coach with no payroll row yet
// reads as 0.
func (s *gormStore) CoachEarned(coachID string) (int64, error) {
	var row models.CoachEarned
	if err := s.db.Where("coach_id = ?", coachID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return row.Amount, nil
}

func (s *gormStore) SalaryDetails(coachID string) ([]models.CompletedSalaryDetail, error) {
	var rows []models.CompletedSalaryDetail
	err := s.db.Where("coach_id = ?", coachID).Order("completed_at").Find(&rows).Error
	return rows, err
}

// CompletedEnrollments lists a coach's fully consumed enrollments with the
// student display name attached. Strictly remaining_lessons = 0.
func (s *gormStore) CompletedEnrollments(coachID string) ([]EnrollmentRow, error) {
	var rows []EnrollmentRow
	err := s.db.Table("enrollments e").
		Select("e.id, e.student_id, e.coach_id, e.course_name, e.total_lessons, e.remaining_lessons, e.salary_when_done, s.name as student_name").
		Joins("LEFT JOIN students s ON s.id = e.student_id").
		Where("e.coach_id = ? AND e.remaining_lessons = 0", coachID).
		Order("e.created_at").
		Scan(&rows).Error
	return rows, err
}

// SettleCoach pays out and clears: the earned total is zeroed, itemized
// details removed and completed enrollments purged from the active ledger,
// all in one transaction. Returns the amount that was settled. There is no
// unsettle.
func (s *gormStore) SettleCoach(coachID string) (int64, error) {
	var settled int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var row models.CoachEarned
		if err := tx.Where("coach_id = ?", coachID).First(&row).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else {
			settled = row.Amount
		}

		if err := tx.Model(&models.CoachEarned{}).
			Where("coach_id = ?", coachID).
			UpdateColumn("amount", 0).Error; err != nil {
			return err
		}
		if err := tx.Where("coach_id = ?", coachID).
			Delete(&models.CompletedSalaryDetail{}).Error; err != nil {
			return err
		}
		return tx.Where("coach_id = ? AND remaining_lessons = 0", coachID).
			Delete(&models.Enrollment{}).Error
	})

	return settled, err
}
