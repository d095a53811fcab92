// Package sitemaintenance tracks facility assets, scheduled maintenance
// tasks and work orders raised against them.
package sitemaintenance

import (
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

type Asset struct {
	shared.BaseEntity
	AssetCode           string       `json:"asset_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	AssetName           string       `json:"asset_name" gorm:"size:255;not null" validate:"required,max=255"`
	AssetType           string       `json:"asset_type" gorm:"size:100;not null" validate:"required,max=100"`
	Location            string       `json:"location" gorm:"size:255;not null" validate:"required,max=255"`
	AcquisitionDate     shared.Date  `json:"acquisition_date" gorm:"not null" validate:"required"`
	LastMaintenanceDate *shared.Date `json:"last_maintenance_date"`
}

func (Asset) TableName() string { return "site_maintenance_assets" }

// TaskStatus of a maintenance task
type TaskStatus string

const (
	TaskScheduled  TaskStatus = "SCHEDULED"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

type Task struct {
	shared.BaseEntity
	TaskNumber      string      `json:"task_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	AssetName       string      `json:"asset_name" gorm:"size:255;not null" validate:"required,max=255"`
	TaskDescription string      `json:"task_description" gorm:"type:text;not null" validate:"required"`
	ScheduledDate   shared.Date `json:"scheduled_date" gorm:"not null" validate:"required"`
	Status          TaskStatus  `json:"status" gorm:"size:20;not null" validate:"oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
	AssignedTo      string      `json:"assigned_to" gorm:"size:255;not null" validate:"required,max=255"`
}

func (Task) TableName() string { return "site_maintenance_tasks" }

func (t *Task) ApplyDefaults() { t.Status = TaskScheduled }

// WorkOrderStatus of a maintenance work order
type WorkOrderStatus string

const (
	WorkOrderOpen       WorkOrderStatus = "OPEN"
	WorkOrderInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderClosed     WorkOrderStatus = "CLOSED"
	WorkOrderCancelled  WorkOrderStatus = "CANCELLED"
)

type WorkOrder struct {
	shared.BaseEntity
	WONumber               string          `json:"wo_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	AssetName              string          `json:"asset_name" gorm:"size:255;not null" validate:"required,max=255"`
	WorkDescription        string          `json:"work_description" gorm:"type:text;not null" validate:"required"`
	CreatedDate            shared.Date     `json:"created_date" gorm:"not null" validate:"required"`
	RequiredCompletionDate shared.Date     `json:"required_completion_date" gorm:"not null" validate:"required"`
	Status                 WorkOrderStatus `json:"status" gorm:"size:20;not null" validate:"oneof=OPEN IN_PROGRESS COMPLETED CLOSED CANCELLED"`
	AssignedTechnician     string          `json:"assigned_technician" gorm:"size:255;not null" validate:"required,max=255"`
	EstimatedCost          decimal.Decimal `json:"estimated_cost" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
}

func (WorkOrder) TableName() string { return "site_maintenance_work_orders" }

func (w *WorkOrder) ApplyDefaults() { w.Status = WorkOrderOpen }
