package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatAuditLog stores one row per relayed chat request. This is audit
// history only; it is never read back into a conversation.
type ChatAuditLog struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Query         string
	Intent        string `gorm:"type:varchar(50);index"`
	DeviceId      *string
	EmittedBytes  int
	DurationMs    int64
	FailureReason *string
	Details       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
}

func (ChatAuditLog) TableName() string {
	return "chat_audit_logs"
}
