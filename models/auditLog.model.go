package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is append-only. Writes are best-effort: a failed insert is
// logged server-side and never fails the triggering operation.
type AuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ActorID    string         `gorm:"not null;index" json:"actorId"`
	ActorRole  string         `gorm:"not null" json:"actorRole"`
	Action     string         `gorm:"not null" json:"action"`
	EntityType string         `gorm:"not null" json:"entityType"`
	EntityID   string         `gorm:"not null" json:"entityId"`
	OldValue   datatypes.JSON `json:"oldValue"`
	NewValue   datatypes.JSON `json:"newValue"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func (AuditLog) TableName() string { return "audit_log" }
