package models

import "time"

type Coach struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Account      string    `gorm:"not null;index" json:"account"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Coach) TableName() string { return "coaches" }
