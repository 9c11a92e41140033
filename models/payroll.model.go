package models

import "time"

// CoachEarned is the running payroll total for one coach, reset to 0 when
// the admin settles.
type CoachEarned struct {
	CoachID string `gorm:"primaryKey" json:"coachId"`
	Amount  int64  `gorm:"not null;default:0" json:"amount"`
}

func (CoachEarned) TableName() string { return "coach_earned" }

// CompletedSalaryDetail itemizes one completed enrollment for payroll
// review. Rows are created the moment an enrollment's remaining count hits
// 0 and deleted in bulk on settlement.
type CompletedSalaryDetail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CoachID     string    `gorm:"not null;index" json:"coachId"`
	StudentName string    `gorm:"not null" json:"studentName"`
	CourseName  string    `gorm:"not null" json:"courseName"`
	CompletedAt time.Time `json:"completedAt"`
	Amount      int64     `gorm:"not null" json:"amount"`
}

func (CompletedSalaryDetail) TableName() string { return "completed_salary_details" }
