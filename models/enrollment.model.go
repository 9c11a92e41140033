package models

import "time"

// Enrollment is a student's purchased block of lessons with one coach for
// one course. RemainingLessons only ever decreases; the enrollment is
// completed once it reaches 0, at which point SalaryWhenDone is owed to
// the coach.
type Enrollment struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	StudentID        string    `gorm:"not null;index" json:"studentId"`
	CoachID          string    `gorm:"not null;index" json:"coachId"`
	CourseName       string    `gorm:"not null" json:"courseName"`
	TotalLessons     int       `gorm:"not null" json:"totalLessons"`
	RemainingLessons int       `gorm:"not null" json:"remainingLessons"`
	SalaryWhenDone   int64     `gorm:"not null;default:0" json:"salaryWhenDone"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (Enrollment) TableName() string { return "enrollments" }
