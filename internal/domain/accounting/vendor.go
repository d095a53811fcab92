// Package accounting holds the general ledger, payables and banking records
// of the accounting module.
package accounting

import (
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vendor is a supplier known to accounting. Procurement keeps its own vendor list.
type Vendor struct {
	shared.BaseEntity
	VendorCode   string `json:"vendor_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	VendorName   string `json:"vendor_name" gorm:"size:255;not null" validate:"required,max=255"`
	Email        string `json:"email" gorm:"size:254" validate:"omitempty,email,max=254"`
	Phone        string `json:"phone" gorm:"size:20" validate:"max=20"`
	TaxID        string `json:"tax_id" gorm:"size:50" validate:"max=50"`
	Address      string `json:"address" gorm:"type:text"`
	City         string `json:"city" gorm:"size:100" validate:"max=100"`
	Country      string `json:"country" gorm:"size:100" validate:"max=100"`
	PaymentTerms string `json:"payment_terms" gorm:"size:100" validate:"max=100"`
	IsActive     bool   `json:"is_active" gorm:"not null"`
}

func (Vendor) TableName() string { return "accounting_vendors" }

func (v *Vendor) ApplyDefaults() { v.IsActive = true }

// InvoiceStatus tracks a vendor invoice through approval and payment
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusReceived  InvoiceStatus = "RECEIVED"
	InvoiceStatusApproved  InvoiceStatus = "APPROVED"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// VendorInvoice records a bill received from a vendor. VendorName is a copy of
// the vendor's name, not a reference.
type VendorInvoice struct {
	shared.BaseEntity
	InvoiceNumber string          `json:"invoice_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	VendorName    string          `json:"vendor_name" gorm:"size:255;not null" validate:"required,max=255"`
	InvoiceDate   shared.Date     `json:"invoice_date" gorm:"not null" validate:"required"`
	DueDate       shared.Date     `json:"due_date" gorm:"not null" validate:"required"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Status        InvoiceStatus   `json:"status" gorm:"size:20;not null;index" validate:"oneof=DRAFT RECEIVED APPROVED PAID CANCELLED"`
	Description   string          `json:"description" gorm:"type:text"`
	ReceivedDate  *shared.Date    `json:"received_date"`
}

func (VendorInvoice) TableName() string { return "accounting_vendor_invoices" }

func (i *VendorInvoice) ApplyDefaults() { i.Status = InvoiceStatusDraft }

// PaymentStatus is shared by payment-like records
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusProcessed PaymentStatus = "PROCESSED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// VendorPayment settles a vendor invoice.
type VendorPayment struct {
	shared.BaseEntity
	PaymentNumber   string          `json:"payment_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	VendorInvoiceID uuid.UUID       `json:"vendor_invoice" gorm:"type:uuid;not null;index" validate:"required"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	PaymentDate     shared.Date     `json:"payment_date" gorm:"not null" validate:"required"`
	Status          PaymentStatus   `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING PROCESSED CANCELLED"`
	PaymentMethod   string          `json:"payment_method" gorm:"size:50;not null" validate:"required,max=50"`
}

func (VendorPayment) TableName() string { return "accounting_vendor_payments" }

func (p *VendorPayment) ApplyDefaults() { p.Status = PaymentStatusPending }
