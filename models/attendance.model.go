package models

import "time"

// PendingAttendance is an unconfirmed lesson-consumption request. At most
// one may exist per enrollment; it is deleted on coach confirmation or when
// confirmation finds the enrollment exhausted. Course and student names are
// snapshotted at request time.
type PendingAttendance struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	EnrollmentID string    `gorm:"not null;uniqueIndex" json:"enrollmentId"`
	StudentID    string    `gorm:"not null;index" json:"studentId"`
	CoachID      string    `gorm:"not null;index" json:"coachId"`
	CourseName   string    `gorm:"not null" json:"courseName"`
	StudentName  string    `gorm:"not null" json:"studentName"`
	RequestedAt  time.Time `json:"requestedAt"`
}

func (PendingAttendance) TableName() string { return "pending_attendances" }

// AttendanceRecord marks one consumed lesson. Append-only and immutable.
type AttendanceRecord struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	EnrollmentID string    `gorm:"not null;index" json:"enrollmentId"`
	StudentID    string    `gorm:"not null;index" json:"studentId"`
	CoachID      string    `gorm:"not null;index" json:"coachId"`
	StudentName  string    `gorm:"not null" json:"studentName"`
	CourseName   string    `gorm:"not null" json:"courseName"`
	ConfirmedAt  time.Time `json:"confirmedAt"`
}

func (AttendanceRecord) TableName() string { return "attendance_records" }
