// Package project tracks projects, their tasks and time booked against them.
// Tasks and time entries refer to their parents by name or number.
package project

import (
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status of a project
type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusActive    Status = "ACTIVE"
	StatusOnHold    Status = "ON_HOLD"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

type Project struct {
	shared.BaseEntity
	ProjectCode    string          `json:"project_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	ProjectName    string          `json:"project_name" gorm:"size:255;not null" validate:"required,max=255"`
	Description    string          `json:"description" gorm:"type:text"`
	StartDate      shared.Date     `json:"start_date" gorm:"not null" validate:"required"`
	EndDate        shared.Date     `json:"end_date" gorm:"not null" validate:"required"`
	Status         Status          `json:"status" gorm:"size:20;not null" validate:"oneof=PLANNED ACTIVE ON_HOLD COMPLETED CANCELLED"`
	ProjectManager string          `json:"project_manager" gorm:"size:255;not null" validate:"required,max=255"`
	Budget         decimal.Decimal `json:"budget" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
}

func (Project) TableName() string { return "project_management_projects" }

func (p *Project) ApplyDefaults() { p.Status = StatusPlanned }

// TaskStatus of a project task
type TaskStatus string

const (
	TaskNew        TaskStatus = "NEW"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskOnHold     TaskStatus = "ON_HOLD"
	TaskCancelled  TaskStatus = "CANCELLED"
)

// Priority of a task
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type Task struct {
	shared.BaseEntity
	TaskNumber           string      `json:"task_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	TaskName             string      `json:"task_name" gorm:"size:255;not null" validate:"required,max=255"`
	ProjectName          string      `json:"project_name" gorm:"size:255;not null" validate:"required,max=255"`
	AssignedTo           string      `json:"assigned_to" gorm:"size:255;not null" validate:"required,max=255"`
	StartDate            shared.Date `json:"start_date" gorm:"not null" validate:"required"`
	DueDate              shared.Date `json:"due_date" gorm:"not null" validate:"required"`
	Status               TaskStatus  `json:"status" gorm:"size:20;not null" validate:"oneof=NEW IN_PROGRESS COMPLETED ON_HOLD CANCELLED"`
	Priority             Priority    `json:"priority" gorm:"size:20;not null" validate:"required,oneof=LOW MEDIUM HIGH"`
	CompletionPercentage int         `json:"completion_percentage" gorm:"not null" validate:"min=0,max=100"`
}

func (Task) TableName() string { return "project_management_tasks" }

func (t *Task) ApplyDefaults() { t.Status = TaskNew }

type TimeEntry struct {
	shared.BaseEntity
	TaskNumber   string          `json:"task_number" gorm:"size:100;not null;index" validate:"required,max=100"`
	EmployeeName string          `json:"employee_name" gorm:"size:255;not null" validate:"required,max=255"`
	EntryDate    shared.Date     `json:"entry_date" gorm:"not null" validate:"required"`
	HoursWorked  decimal.Decimal `json:"hours_worked" gorm:"type:numeric(5,2);not null" validate:"required,dmin=0,dmax_digits=5,dplaces=2"`
	Description  string          `json:"description" gorm:"type:text"`
}

func (TimeEntry) TableName() string { return "project_management_time_entries" }
