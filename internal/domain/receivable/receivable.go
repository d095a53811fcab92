// Package receivable models customer invoices and collections.
package receivable

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks a customer invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "DRAFT"
	InvoiceStatusIssued        InvoiceStatus = "ISSUED"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

// CustomerInvoice is an amount billed to a customer named by copy.
type CustomerInvoice struct {
	shared.BaseEntity
	InvoiceNumber string          `json:"invoice_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	CustomerName  string          `json:"customer_name" gorm:"size:255;not null" validate:"required,max=255"`
	InvoiceDate   shared.Date     `json:"invoice_date" gorm:"not null" validate:"required"`
	DueDate       shared.Date     `json:"due_date" gorm:"not null" validate:"required"`
	InvoiceAmount decimal.Decimal `json:"invoice_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	PaidAmount    decimal.Decimal `json:"paid_amount" gorm:"type:numeric(15,2);not null" validate:"dmin=0,dmax_digits=15,dplaces=2"`
	Status        InvoiceStatus   `json:"status" gorm:"size:20;not null;index" validate:"oneof=DRAFT ISSUED PARTIALLY_PAID PAID CANCELLED"`
	Description   string          `json:"description" gorm:"type:text"`
	IssuedDate    *shared.Date    `json:"issued_date"`
}

func (CustomerInvoice) TableName() string { return "ar_customer_invoices" }

func (i *CustomerInvoice) ApplyDefaults() {
	i.PaidAmount = decimal.Zero
	i.Status = InvoiceStatusDraft
}

// Outstanding is the uncollected part of the invoice.
func (i *CustomerInvoice) Outstanding() decimal.Decimal {
	return i.InvoiceAmount.Sub(i.PaidAmount)
}

// InvoiceLineItem is one priced line of an invoice. LineTotal is derived.
type InvoiceLineItem struct {
	shared.BaseEntity
	CustomerInvoiceID uuid.UUID       `json:"customer_invoice" gorm:"type:uuid;not null;index" validate:"required"`
	Description       string          `json:"description" gorm:"size:255;not null" validate:"required,max=255"`
	Quantity          int             `json:"quantity" gorm:"not null" validate:"required,min=1"`
	UnitPrice         decimal.Decimal `json:"unit_price" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	LineTotal         decimal.Decimal `json:"line_total" gorm:"type:numeric(15,2);not null"`
}

func (InvoiceLineItem) TableName() string { return "ar_invoice_line_items" }

func (l *InvoiceLineItem) Prepare() error {
	l.LineTotal = shared.LineTotal(l.Quantity, l.UnitPrice)
	return nil
}

// PaymentStatus tracks an incoming payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusReceived  PaymentStatus = "RECEIVED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// CustomerPayment collects (part of) an invoice.
type CustomerPayment struct {
	shared.BaseEntity
	PaymentNumber     string          `json:"payment_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	CustomerInvoiceID uuid.UUID       `json:"customer_invoice" gorm:"type:uuid;not null;index" validate:"required"`
	PaymentAmount     decimal.Decimal `json:"payment_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	PaymentDate       shared.Date     `json:"payment_date" gorm:"not null" validate:"required"`
	Status            PaymentStatus   `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING RECEIVED CANCELLED"`
	PaymentMethod     string          `json:"payment_method" gorm:"size:50;not null" validate:"required,max=50"`
	ReceivedDate      *shared.Date    `json:"received_date"`
}

func (CustomerPayment) TableName() string { return "ar_customer_payments" }

func (p *CustomerPayment) ApplyDefaults() { p.Status = PaymentStatusPending }

// ReconciliationStatus tracks a period reconciliation
type ReconciliationStatus string

const (
	ReconciliationPending    ReconciliationStatus = "PENDING"
	ReconciliationInProgress ReconciliationStatus = "IN_PROGRESS"
	ReconciliationReconciled ReconciliationStatus = "RECONCILED"
)

// ARReconciliation compares invoiced and collected totals for a period.
type ARReconciliation struct {
	shared.BaseEntity
	ReconciliationPeriod string               `json:"reconciliation_period" gorm:"size:100;not null" validate:"required,max=100"`
	Status               ReconciliationStatus `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING IN_PROGRESS RECONCILED"`
	TotalInvoices        decimal.Decimal      `json:"total_invoices" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	TotalPayments        decimal.Decimal      `json:"total_payments" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	DifferenceAmount     decimal.Decimal      `json:"difference_amount" gorm:"type:numeric(15,2);not null"`
	ReconciledDate       *shared.Date         `json:"reconciled_date"`
}

func (ARReconciliation) TableName() string { return "ar_reconciliations" }

func (r *ARReconciliation) ApplyDefaults() { r.Status = ReconciliationPending }

func (r *ARReconciliation) Prepare() error {
	r.DifferenceAmount = r.TotalInvoices.Sub(r.TotalPayments)
	return nil
}

// DiscountType classifies a discount policy
type DiscountType string

const (
	DiscountEarlyPayment DiscountType = "EARLY_PAYMENT"
	DiscountVolume       DiscountType = "VOLUME"
	DiscountPromotional  DiscountType = "PROMOTIONAL"
)

// ARDiscount is a discount policy offered to customers.
type ARDiscount struct {
	shared.BaseEntity
	DiscountCode       string          `json:"discount_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	DiscountType       DiscountType    `json:"discount_type" gorm:"size:20;not null" validate:"required,oneof=EARLY_PAYMENT VOLUME PROMOTIONAL"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" gorm:"type:numeric(5,2);not null" validate:"required,dmin=0,dmax_digits=5,dplaces=2"`
	ApplicableTo       string          `json:"applicable_to" gorm:"size:255;not null" validate:"required,max=255"`
	EffectiveDate      shared.Date     `json:"effective_date" gorm:"not null" validate:"required"`
	EndDate            *shared.Date    `json:"end_date"`
}

func (ARDiscount) TableName() string { return "ar_discounts" }

// ARSettings holds module-wide receivables options.
type ARSettings struct {
	shared.BaseEntity
	AutoInvoiceEnabled             bool            `json:"auto_invoice_enabled" gorm:"not null"`
	DefaultPaymentTermsDays        int             `json:"default_payment_terms_days" gorm:"not null"`
	EarlyPaymentDiscountDays       int             `json:"early_payment_discount_days" gorm:"not null"`
	EarlyPaymentDiscountPercentage decimal.Decimal `json:"early_payment_discount_percentage" gorm:"type:numeric(5,2);not null" validate:"dmax_digits=5,dplaces=2"`
	LatePaymentChargeEnabled       bool            `json:"late_payment_charge_enabled" gorm:"not null"`
	LatePaymentChargePercentage    decimal.Decimal `json:"late_payment_charge_percentage" gorm:"type:numeric(5,2);not null" validate:"dmax_digits=5,dplaces=2"`
	AutoDunningEnabled             bool            `json:"auto_dunning_enabled" gorm:"not null"`
	UpdatedDate                    time.Time       `json:"updated_date" gorm:"autoUpdateTime"`
}

func (ARSettings) TableName() string { return "ar_settings" }

func (s *ARSettings) ApplyDefaults() {
	s.AutoInvoiceEnabled = true
	s.DefaultPaymentTermsDays = 30
	s.EarlyPaymentDiscountDays = 10
	s.EarlyPaymentDiscountPercentage = decimal.NewFromInt(2)
	s.LatePaymentChargeEnabled = true
	s.LatePaymentChargePercentage = decimal.NewFromInt(1)
}

// ARAging buckets a customer's outstanding balance by age.
type ARAging struct {
	shared.BaseEntity
	CustomerName     string          `json:"customer_name" gorm:"size:255;not null" validate:"required,max=255"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	CurrentAmount    decimal.Decimal `json:"current_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Amount30Days     decimal.Decimal `json:"amount_30_days" gorm:"column:amount_30_days;type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Amount60Days     decimal.Decimal `json:"amount_60_days" gorm:"column:amount_60_days;type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Amount90Days     decimal.Decimal `json:"amount_90_days" gorm:"column:amount_90_days;type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	AmountOver90Days decimal.Decimal `json:"amount_over_90_days" gorm:"column:amount_over_90_days;type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	ReportDate       shared.Date     `json:"report_date" gorm:"not null" validate:"required"`
}

func (ARAging) TableName() string { return "ar_agings" }
