package audit

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"

	"swimtrack/models"
	"swimtrack/store"
)

// Action tags recorded on mutating endpoints.
const (
	ActionCreate            = "CREATE"
	ActionUpdateAccount     = "UPDATE_ACCOUNT"
	ActionUpdatePassword    = "UPDATE_PASSWORD"
	ActionResetPassword     = "RESET_PASSWORD"
	ActionDelete            = "DELETE"
	ActionCreateEnrollment  = "CREATE_ENROLLMENT"
	ActionRequestAttendance = "REQUEST_ATTENDANCE"
	ActionConfirmAttendance = "CONFIRM_ATTENDANCE"
	ActionConfirmPay        = "CONFIRM_PAY"
)

// Logger appends audit entries. Writes are best-effort: failures are
// logged and swallowed so they never abort the operation being audited.
type Logger struct {
	store store.Store
}

func New(st store.Store) *Logger {
	return &Logger{store: st}
}

// Log records one mutating action. oldValue/newValue are marshalled to
// JSON snapshots; nil values are stored as NULL.
func (l *Logger) Log(actorID, actorRole, action, entityType, entityID string, oldValue, newValue interface{}) {
	entry := &models.AuditLog{
		ActorID:    actorID,
		ActorRole:  actorRole,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if oldValue != nil {
		if b, err := json.Marshal(oldValue); err == nil {
			entry.OldValue = datatypes.JSON(b)
		}
	}
	if newValue != nil {
		if b, err := json.Marshal(newValue); err == nil {
			entry.NewValue = datatypes.JSON(b)
		}
	}

	if err := l.store.AppendAudit(entry); err != nil {
		log.Printf("audit log error: %v", err)
	}
}
