package models

import "time"

// Admin is a singleton row. Its account and password are mutable but the
// row itself is never deleted.
type Admin struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Account      string    `gorm:"not null" json:"account"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Admin) TableName() string { return "admin" }
