package models

import "time"

type Student struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Account      string    `gorm:"not null;index" json:"account"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Contact      string    `gorm:"default:''" json:"contact"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Student) TableName() string { return "students" }
