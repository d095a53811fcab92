// Package hr holds employee records, daily attendance and leave requests.
package hr

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gender of an employee
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Department an employee belongs to
type Department string

const (
	DepartmentHR          Department = "HR"
	DepartmentIT          Department = "IT"
	DepartmentSales       Department = "SALES"
	DepartmentFinance     Department = "FINANCE"
	DepartmentProduction  Department = "PRODUCTION"
	DepartmentMaintenance Department = "MAINTENANCE"
)

// Employee is a staff member linked one-to-one to a user account.
type Employee struct {
	shared.BaseEntity
	EmployeeID  string          `json:"employee_id" gorm:"size:20;not null;uniqueIndex" validate:"required,max=20"`
	UserID      uuid.UUID       `json:"user" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	FirstName   string          `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName    string          `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Email       string          `json:"email" gorm:"size:254;not null;uniqueIndex" validate:"required,email,max=254"`
	Phone       string          `json:"phone" gorm:"size:20;not null" validate:"required,max=20"`
	Gender      Gender          `json:"gender" gorm:"size:1;not null" validate:"required,oneof=M F O"`
	DateOfBirth shared.Date     `json:"date_of_birth" gorm:"not null" validate:"required"`
	DateJoined  shared.Date     `json:"date_joined" gorm:"not null" validate:"required"`
	Department  Department      `json:"department" gorm:"size:20;not null" validate:"required,oneof=HR IT SALES FINANCE PRODUCTION MAINTENANCE"`
	Position    string          `json:"position" gorm:"size:100;not null" validate:"required,max=100"`
	Salary      decimal.Decimal `json:"salary" gorm:"type:numeric(10,2);not null" validate:"required,dmin=0,dmax_digits=10,dplaces=2"`
	IsActive    bool            `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Employee) TableName() string { return "hr_employee" }

func (e *Employee) ApplyDefaults() { e.IsActive = true }

// AttendanceStatus marks a day
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "P"
	AttendanceAbsent  AttendanceStatus = "A"
	AttendanceLeave   AttendanceStatus = "L"
	AttendanceHoliday AttendanceStatus = "H"
)

// Attendance is one employee's record for one date.
type Attendance struct {
	shared.BaseEntity
	EmployeeID   uuid.UUID         `json:"employee" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_date" validate:"required"`
	Date         shared.Date       `json:"date" gorm:"not null;uniqueIndex:idx_attendance_employee_date" validate:"required"`
	Status       AttendanceStatus  `json:"status" gorm:"size:1;not null" validate:"required,oneof=P A L H"`
	CheckInTime  *shared.TimeOfDay `json:"check_in_time"`
	CheckOutTime *shared.TimeOfDay `json:"check_out_time"`
	Remarks      string            `json:"remarks" gorm:"type:text"`
	CreatedAt    time.Time         `json:"created_at"`
}

func (Attendance) TableName() string { return "hr_attendance" }

// LeaveType classifies a leave request
type LeaveType string

const (
	LeaveSick      LeaveType = "SL"
	LeavePersonal  LeaveType = "PL"
	LeaveCasual    LeaveType = "CL"
	LeaveMaternity LeaveType = "ML"
	LeaveUnpaid    LeaveType = "UL"
)

// LeaveStatus is the approval state of a leave request
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "P"
	LeaveApproved LeaveStatus = "A"
	LeaveRejected LeaveStatus = "R"
)

// Leave is a request for time off.
type Leave struct {
	shared.BaseEntity
	EmployeeID   uuid.UUID   `json:"employee" gorm:"type:uuid;not null;index" validate:"required"`
	LeaveType    LeaveType   `json:"leave_type" gorm:"size:2;not null" validate:"required,oneof=SL PL CL ML UL"`
	StartDate    shared.Date `json:"start_date" gorm:"not null" validate:"required"`
	EndDate      shared.Date `json:"end_date" gorm:"not null" validate:"required"`
	Reason       string      `json:"reason" gorm:"type:text;not null" validate:"required"`
	Status       LeaveStatus `json:"status" gorm:"size:1;not null" validate:"oneof=P A R"`
	ApprovedByID *uuid.UUID  `json:"approved_by" gorm:"type:uuid"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Leave) TableName() string { return "hr_leave" }

func (l *Leave) ApplyDefaults() { l.Status = LeavePending }

// Approve marks the leave approved, optionally recording the approver.
func (l *Leave) Approve(approver *uuid.UUID) {
	l.Status = LeaveApproved
	if approver != nil {
		l.ApprovedByID = approver
	}
}

// Reject marks the leave rejected.
func (l *Leave) Reject() {
	l.Status = LeaveRejected
}
