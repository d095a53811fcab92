// Package payable models vendor bills and their settlement.
package payable

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillStatus tracks a vendor bill
type BillStatus string

const (
	BillStatusDraft         BillStatus = "DRAFT"
	BillStatusReceived      BillStatus = "RECEIVED"
	BillStatusApproved      BillStatus = "APPROVED"
	BillStatusPartiallyPaid BillStatus = "PARTIALLY_PAID"
	BillStatusPaid          BillStatus = "PAID"
	BillStatusCancelled     BillStatus = "CANCELLED"
)

// VendorBill is a payable owed to a vendor named by copy.
type VendorBill struct {
	shared.BaseEntity
	BillNumber   string          `json:"bill_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	VendorName   string          `json:"vendor_name" gorm:"size:255;not null" validate:"required,max=255"`
	BillDate     shared.Date     `json:"bill_date" gorm:"not null" validate:"required"`
	DueDate      shared.Date     `json:"due_date" gorm:"not null" validate:"required"`
	BillAmount   decimal.Decimal `json:"bill_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	PaidAmount   decimal.Decimal `json:"paid_amount" gorm:"type:numeric(15,2);not null" validate:"dmin=0,dmax_digits=15,dplaces=2"`
	Status       BillStatus      `json:"status" gorm:"size:20;not null;index" validate:"oneof=DRAFT RECEIVED APPROVED PARTIALLY_PAID PAID CANCELLED"`
	Description  string          `json:"description" gorm:"type:text"`
	ReceivedDate *shared.Date    `json:"received_date"`
}

func (VendorBill) TableName() string { return "ap_vendor_bills" }

func (b *VendorBill) ApplyDefaults() {
	b.PaidAmount = decimal.Zero
	b.Status = BillStatusDraft
}

// Outstanding is the unpaid part of the bill.
func (b *VendorBill) Outstanding() decimal.Decimal {
	return b.BillAmount.Sub(b.PaidAmount)
}

// VendorBillLineItem is one priced line of a bill. LineTotal is derived.
type VendorBillLineItem struct {
	shared.BaseEntity
	VendorBillID uuid.UUID       `json:"vendor_bill" gorm:"type:uuid;not null;index" validate:"required"`
	Description  string          `json:"description" gorm:"size:255;not null" validate:"required,max=255"`
	Quantity     int             `json:"quantity" gorm:"not null" validate:"required,min=1"`
	UnitPrice    decimal.Decimal `json:"unit_price" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	LineTotal    decimal.Decimal `json:"line_total" gorm:"type:numeric(15,2);not null"`
}

func (VendorBillLineItem) TableName() string { return "ap_vendor_bill_line_items" }

func (l *VendorBillLineItem) Prepare() error {
	l.LineTotal = shared.LineTotal(l.Quantity, l.UnitPrice)
	return nil
}

// PaymentStatus tracks an outgoing payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusProcessed PaymentStatus = "PROCESSED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// VendorPayment pays (part of) a bill.
type VendorPayment struct {
	shared.BaseEntity
	PaymentNumber string          `json:"payment_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	VendorBillID  uuid.UUID       `json:"vendor_bill" gorm:"type:uuid;not null;index" validate:"required"`
	PaymentAmount decimal.Decimal `json:"payment_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	PaymentDate   shared.Date     `json:"payment_date" gorm:"not null" validate:"required"`
	Status        PaymentStatus   `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING PROCESSED CANCELLED"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50;not null" validate:"required,max=50"`
	ProcessedDate *shared.Date    `json:"processed_date"`
}

func (VendorPayment) TableName() string { return "ap_vendor_payments" }

func (p *VendorPayment) ApplyDefaults() { p.Status = PaymentStatusPending }

// ReconciliationStatus tracks a period reconciliation
type ReconciliationStatus string

const (
	ReconciliationPending    ReconciliationStatus = "PENDING"
	ReconciliationInProgress ReconciliationStatus = "IN_PROGRESS"
	ReconciliationReconciled ReconciliationStatus = "RECONCILED"
)

// APReconciliation compares billed and paid totals for a period.
type APReconciliation struct {
	shared.BaseEntity
	ReconciliationPeriod string               `json:"reconciliation_period" gorm:"size:100;not null" validate:"required,max=100"`
	Status               ReconciliationStatus `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING IN_PROGRESS RECONCILED"`
	TotalBills           decimal.Decimal      `json:"total_bills" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	TotalPayments        decimal.Decimal      `json:"total_payments" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	DifferenceAmount     decimal.Decimal      `json:"difference_amount" gorm:"type:numeric(15,2);not null"`
	ReconciledDate       *shared.Date         `json:"reconciled_date"`
}

func (APReconciliation) TableName() string { return "ap_reconciliations" }

func (r *APReconciliation) ApplyDefaults() { r.Status = ReconciliationPending }

func (r *APReconciliation) Prepare() error {
	r.DifferenceAmount = r.TotalBills.Sub(r.TotalPayments)
	return nil
}

// DiscountType classifies a discount policy
type DiscountType string

const (
	DiscountEarlyPayment DiscountType = "EARLY_PAYMENT"
	DiscountVolume       DiscountType = "VOLUME"
	DiscountPromotional  DiscountType = "PROMOTIONAL"
)

// APDiscount is a discount policy offered by vendors.
type APDiscount struct {
	shared.BaseEntity
	DiscountCode       string          `json:"discount_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	DiscountType       DiscountType    `json:"discount_type" gorm:"size:20;not null" validate:"required,oneof=EARLY_PAYMENT VOLUME PROMOTIONAL"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" gorm:"type:numeric(5,2);not null" validate:"required,dmin=0,dmax_digits=5,dplaces=2"`
	ApplicableTo       string          `json:"applicable_to" gorm:"size:255;not null" validate:"required,max=255"`
	EffectiveDate      shared.Date     `json:"effective_date" gorm:"not null" validate:"required"`
	EndDate            *shared.Date    `json:"end_date"`
}

func (APDiscount) TableName() string { return "ap_discounts" }

// APSettings holds module-wide payables options.
type APSettings struct {
	shared.BaseEntity
	AutoBillMatchingEnabled        bool            `json:"auto_bill_matching_enabled" gorm:"not null"`
	DefaultPaymentTermsDays        int             `json:"default_payment_terms_days" gorm:"not null"`
	EarlyPaymentDiscountDays       int             `json:"early_payment_discount_days" gorm:"not null"`
	EarlyPaymentDiscountPercentage decimal.Decimal `json:"early_payment_discount_percentage" gorm:"type:numeric(5,2);not null" validate:"dmax_digits=5,dplaces=2"`
	RequiredApprovalAmount         decimal.Decimal `json:"required_approval_amount" gorm:"type:numeric(15,2);not null" validate:"dmax_digits=15,dplaces=2"`
	AutoDuplicateInvoiceCheck      bool            `json:"auto_duplicate_invoice_check" gorm:"not null"`
	UpdatedDate                    time.Time       `json:"updated_date" gorm:"autoUpdateTime"`
}

func (APSettings) TableName() string { return "ap_settings" }

func (s *APSettings) ApplyDefaults() {
	s.AutoBillMatchingEnabled = true
	s.DefaultPaymentTermsDays = 30
	s.EarlyPaymentDiscountDays = 10
	s.EarlyPaymentDiscountPercentage = decimal.NewFromInt(2)
	s.RequiredApprovalAmount = decimal.Zero
	s.AutoDuplicateInvoiceCheck = true
}

// APAging buckets a vendor's outstanding balance by age.
type APAging struct {
	shared.BaseEntity
	VendorName       string          `json:"vendor_name" gorm:"size:255;not null" validate:"required,max=255"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	CurrentAmount    decimal.Decimal `json:"current_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Amount30Days     decimal.Decimal `json:"amount_30_days" gorm:"column:amount_30_days;type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Amount60Days     decimal.Decimal `json:"amount_60_days" gorm:"column:amount_60_days;type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Amount90Days     decimal.Decimal `json:"amount_90_days" gorm:"column:amount_90_days;type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	AmountOver90Days decimal.Decimal `json:"amount_over_90_days" gorm:"column:amount_over_90_days;type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	ReportDate       shared.Date     `json:"report_date" gorm:"not null" validate:"required"`
}

func (APAging) TableName() string { return "ap_agings" }
