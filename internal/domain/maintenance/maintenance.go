// Package maintenance tracks plant equipment and repair requests against it.
package maintenance

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
)

type Equipment struct {
	shared.BaseEntity
	Code        string    `json:"code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Name        string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"size:100;not null" validate:"required,max=100"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Equipment) TableName() string { return "maintenance_equipment" }

// RequestStatus of a maintenance request
type RequestStatus string

const (
	RequestOpen       RequestStatus = "OPEN"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestClosed     RequestStatus = "CLOSED"
)

// Priority of a maintenance request
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type Request struct {
	shared.BaseEntity
	TicketNo    string        `json:"ticket_no" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	EquipmentID uuid.UUID     `json:"equipment" gorm:"type:uuid;not null;index" validate:"required"`
	Status      RequestStatus `json:"status" gorm:"size:20;not null" validate:"oneof=OPEN IN_PROGRESS CLOSED"`
	Description string        `json:"description" gorm:"type:text;not null" validate:"required"`
	Priority    Priority      `json:"priority" gorm:"size:10;not null" validate:"required,oneof=LOW MEDIUM HIGH"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Request) TableName() string { return "maintenance_request" }

func (r *Request) ApplyDefaults() { r.Status = RequestOpen }
