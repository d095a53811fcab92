// Package production schedules shop-floor work orders.
package production

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
)

// WorkOrderStatus is the lifecycle state of a work order
type WorkOrderStatus string

const (
	WorkOrderDraft      WorkOrderStatus = "DRAFT"
	WorkOrderPlanned    WorkOrderStatus = "PLANNED"
	WorkOrderInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderCancelled  WorkOrderStatus = "CANCELLED"
)

type WorkOrder struct {
	shared.BaseEntity
	WorkOrderNo string          `json:"work_order_no" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Status      WorkOrderStatus `json:"status" gorm:"size:20;not null" validate:"oneof=DRAFT PLANNED IN_PROGRESS COMPLETED CANCELLED"`
	StartDate   shared.Date     `json:"start_date" gorm:"not null" validate:"required"`
	EndDate     shared.Date     `json:"end_date" gorm:"not null" validate:"required"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (WorkOrder) TableName() string { return "production_work_order" }

func (w *WorkOrder) ApplyDefaults() { w.Status = WorkOrderDraft }
