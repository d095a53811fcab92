// Package expense covers employee expense reports, their expense lines and
// reimbursements.
package expense

import (
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportStatus is the approval stage of an expense report
type ReportStatus string

const (
	ReportDraft      ReportStatus = "DRAFT"
	ReportSubmitted  ReportStatus = "SUBMITTED"
	ReportApproved   ReportStatus = "APPROVED"
	ReportRejected   ReportStatus = "REJECTED"
	ReportReimbursed ReportStatus = "REIMBURSED"
)

type Report struct {
	shared.BaseEntity
	ReportNumber      string          `json:"report_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	EmployeeName      string          `json:"employee_name" gorm:"size:255;not null" validate:"required,max=255"`
	ReportPeriodStart shared.Date     `json:"report_period_start" gorm:"not null" validate:"required"`
	ReportPeriodEnd   shared.Date     `json:"report_period_end" gorm:"not null" validate:"required"`
	TotalExpenses     decimal.Decimal `json:"total_expenses" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Status            ReportStatus    `json:"status" gorm:"size:20;not null" validate:"oneof=DRAFT SUBMITTED APPROVED REJECTED REIMBURSED"`
	SubmittedDate     *shared.Date    `json:"submitted_date"`
	ApprovedDate      *shared.Date    `json:"approved_date"`
	ReimbursedDate    *shared.Date    `json:"reimbursed_date"`
}

func (Report) TableName() string { return "employee_expense_reports" }

func (r *Report) ApplyDefaults() { r.Status = ReportDraft }

// Category of a single expense
type Category string

const (
	CategoryTravel        Category = "TRAVEL"
	CategoryMeals         Category = "MEALS"
	CategoryAccommodation Category = "ACCOMMODATION"
	CategoryOffice        Category = "OFFICE"
	CategoryEquipment     Category = "EQUIPMENT"
	CategoryOther         Category = "OTHER"
)

type Expense struct {
	shared.BaseEntity
	ExpenseReportID uuid.UUID       `json:"expense_report" gorm:"type:uuid;not null;index" validate:"required"`
	ExpenseDate     shared.Date     `json:"expense_date" gorm:"not null" validate:"required"`
	Category        Category        `json:"category" gorm:"size:50;not null" validate:"required,oneof=TRAVEL MEALS ACCOMMODATION OFFICE EQUIPMENT OTHER"`
	Description     string          `json:"description" gorm:"size:255;not null" validate:"required,max=255"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	PaymentMethod   string          `json:"payment_method" gorm:"size:50;not null" validate:"required,max=50"`
	ReceiptAttached bool            `json:"receipt_attached" gorm:"not null"`
}

func (Expense) TableName() string { return "employee_expenses" }

// ReimbursementStatus of a payout
type ReimbursementStatus string

const (
	ReimbursementPending   ReimbursementStatus = "PENDING"
	ReimbursementApproved  ReimbursementStatus = "APPROVED"
	ReimbursementPaid      ReimbursementStatus = "PAID"
	ReimbursementCancelled ReimbursementStatus = "CANCELLED"
)

type Reimbursement struct {
	shared.BaseEntity
	ReimbursementNumber string              `json:"reimbursement_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	ExpenseReportID     uuid.UUID           `json:"expense_report" gorm:"type:uuid;not null;index" validate:"required"`
	ReimbursementAmount decimal.Decimal     `json:"reimbursement_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	PaymentMethod       string              `json:"payment_method" gorm:"size:50;not null" validate:"required,max=50"`
	Status              ReimbursementStatus `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING APPROVED PAID CANCELLED"`
	PaymentDate         *shared.Date        `json:"payment_date"`
}

func (Reimbursement) TableName() string { return "employee_expense_reimbursements" }

func (r *Reimbursement) ApplyDefaults() { r.Status = ReimbursementPending }
