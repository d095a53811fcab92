package accounting

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
)

// AuditAction names the kind of change recorded
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionReject  AuditAction = "REJECT"
)

// AuditLog is an append-only trail of accounting changes. Rows are never
// updated or deleted once written.
type AuditLog struct {
	shared.BaseEntity
	Action     AuditAction `json:"action" gorm:"size:20;not null;index" validate:"required,oneof=CREATE UPDATE DELETE APPROVE REJECT"`
	EntityType string      `json:"entity_type" gorm:"size:100;not null;index" validate:"required,max=100"`
	EntityID   string      `json:"entity_id" gorm:"size:64;not null" validate:"required,max=64"`
	User       string      `json:"user" gorm:"size:255;not null" validate:"required,max=255"`
	OldValue   shared.JSON `json:"old_value"`
	NewValue   shared.JSON `json:"new_value"`
	Timestamp  time.Time   `json:"timestamp" gorm:"autoCreateTime;index"`
	IPAddress  *string     `json:"ip_address" gorm:"size:45" validate:"omitempty,ip"`
}

func (AuditLog) TableName() string { return "accounting_audit_logs" }
