// Package procurement covers purchase orders, receipts, quotations and
// three-way matching. Cross-document links are kept as document numbers.
package procurement

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus is the lifecycle of a purchase order
type PurchaseOrderStatus string

const (
	POStatusDraft        PurchaseOrderStatus = "DRAFT"
	POStatusSent         PurchaseOrderStatus = "SENT"
	POStatusAcknowledged PurchaseOrderStatus = "ACKNOWLEDGED"
	POStatusReceived     PurchaseOrderStatus = "RECEIVED"
	POStatusInvoiced     PurchaseOrderStatus = "INVOICED"
	POStatusPaid         PurchaseOrderStatus = "PAID"
	POStatusCancelled    PurchaseOrderStatus = "CANCELLED"
)

type PurchaseOrder struct {
	shared.BaseEntity
	PONumber     string              `json:"po_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	VendorName   string              `json:"vendor_name" gorm:"size:255;not null" validate:"required,max=255"`
	PODate       shared.Date         `json:"po_date" gorm:"not null" validate:"required"`
	DeliveryDate shared.Date         `json:"delivery_date" gorm:"not null" validate:"required"`
	TotalAmount  decimal.Decimal     `json:"total_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Status       PurchaseOrderStatus `json:"status" gorm:"size:20;not null" validate:"oneof=DRAFT SENT ACKNOWLEDGED RECEIVED INVOICED PAID CANCELLED"`
}

func (PurchaseOrder) TableName() string { return "procurement_purchase_orders" }

func (p *PurchaseOrder) ApplyDefaults() { p.Status = POStatusDraft }

// POLineItem is one line of a purchase order, linked by order number.
type POLineItem struct {
	shared.BaseEntity
	PurchaseOrderNumber string          `json:"purchase_order_number" gorm:"size:100;not null;index" validate:"required,max=100"`
	ItemDescription     string          `json:"item_description" gorm:"size:255;not null" validate:"required,max=255"`
	Quantity            int             `json:"quantity" gorm:"not null" validate:"required,min=1"`
	UnitPrice           decimal.Decimal `json:"unit_price" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	LineTotal           decimal.Decimal `json:"line_total" gorm:"type:numeric(15,2);not null"`
}

func (POLineItem) TableName() string { return "procurement_po_line_items" }

func (l *POLineItem) Prepare() error {
	l.LineTotal = shared.LineTotal(l.Quantity, l.UnitPrice)
	return nil
}

// ReceiptStatus of a goods receipt
type ReceiptStatus string

const (
	ReceiptPending  ReceiptStatus = "PENDING"
	ReceiptReceived ReceiptStatus = "RECEIVED"
	ReceiptRejected ReceiptStatus = "REJECTED"
)

type GoodsReceipt struct {
	shared.BaseEntity
	ReceiptNumber       string        `json:"receipt_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	PurchaseOrderNumber string        `json:"purchase_order_number" gorm:"size:100;not null" validate:"required,max=100"`
	ReceiptDate         shared.Date   `json:"receipt_date" gorm:"not null" validate:"required"`
	TotalItems          int           `json:"total_items" gorm:"not null" validate:"required,min=1"`
	Status              ReceiptStatus `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING RECEIVED REJECTED"`
	ReceivedBy          string        `json:"received_by" gorm:"size:255;not null" validate:"required,max=255"`
}

func (GoodsReceipt) TableName() string { return "procurement_goods_receipts" }

func (g *GoodsReceipt) ApplyDefaults() { g.Status = ReceiptPending }

// RFQStatus of a request for quotation
type RFQStatus string

const (
	RFQOpen    RFQStatus = "OPEN"
	RFQQuoted  RFQStatus = "QUOTED"
	RFQAwarded RFQStatus = "AWARDED"
	RFQClosed  RFQStatus = "CLOSED"
)

// RequestForQuotation asks vendors to quote on a set of items.
type RequestForQuotation struct {
	shared.BaseEntity
	RFQNumber            string      `json:"rfq_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	RFQDate              shared.Date `json:"rfq_date" gorm:"not null" validate:"required"`
	ItemsDescription     string      `json:"items_description" gorm:"type:text;not null" validate:"required"`
	RequiredDeliveryDate shared.Date `json:"required_delivery_date" gorm:"not null" validate:"required"`
	Status               RFQStatus   `json:"status" gorm:"size:20;not null" validate:"oneof=OPEN QUOTED AWARDED CLOSED"`
	VendorCount          int         `json:"vendor_count" gorm:"not null" validate:"required,min=1"`
}

func (RequestForQuotation) TableName() string { return "procurement_rfqs" }

func (r *RequestForQuotation) ApplyDefaults() { r.Status = RFQOpen }

// QuotationStatus of a vendor quotation
type QuotationStatus string

const (
	QuotationQuoted   QuotationStatus = "QUOTED"
	QuotationAccepted QuotationStatus = "ACCEPTED"
	QuotationRejected QuotationStatus = "REJECTED"
	QuotationExpired  QuotationStatus = "EXPIRED"
)

type VendorQuotation struct {
	shared.BaseEntity
	QuotationNumber string          `json:"quotation_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	VendorName      string          `json:"vendor_name" gorm:"size:255;not null" validate:"required,max=255"`
	RFQNumber       string          `json:"rfq_number" gorm:"size:100;not null" validate:"required,max=100"`
	QuotationDate   shared.Date     `json:"quotation_date" gorm:"not null" validate:"required"`
	ExpiryDate      shared.Date     `json:"expiry_date" gorm:"not null" validate:"required"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Status          QuotationStatus `json:"status" gorm:"size:20;not null" validate:"oneof=QUOTED ACCEPTED REJECTED EXPIRED"`
}

func (VendorQuotation) TableName() string { return "procurement_vendor_quotations" }

func (q *VendorQuotation) ApplyDefaults() { q.Status = QuotationQuoted }

// MatchingStatus is the result of a three-way match
type MatchingStatus string

const (
	MatchingPending   MatchingStatus = "PENDING"
	MatchingMatched   MatchingStatus = "MATCHED"
	MatchingVariance  MatchingStatus = "VARIANCE"
	MatchingUnmatched MatchingStatus = "UNMATCHED"
)

// ThreeWayMatching reconciles a purchase order, its receipt and the invoice.
// VarianceAmount is signed.
type ThreeWayMatching struct {
	shared.BaseEntity
	PONumber           string          `json:"po_number" gorm:"size:100;not null" validate:"required,max=100"`
	GoodsReceiptNumber string          `json:"goods_receipt_number" gorm:"size:100;not null" validate:"required,max=100"`
	InvoiceNumber      string          `json:"invoice_number" gorm:"size:100;not null" validate:"required,max=100"`
	MatchingDate       shared.Date     `json:"matching_date" gorm:"not null" validate:"required"`
	Status             MatchingStatus  `json:"status" gorm:"size:20;not null" validate:"required,oneof=PENDING MATCHED VARIANCE UNMATCHED"`
	VarianceAmount     decimal.Decimal `json:"variance_amount" gorm:"type:numeric(15,2);not null" validate:"dmax_digits=15,dplaces=2"`
}

func (ThreeWayMatching) TableName() string { return "procurement_three_way_matchings" }

// Settings holds procurement module switches.
type Settings struct {
	shared.BaseEntity
	AutoPOGeneration         bool            `json:"auto_po_generation" gorm:"not null"`
	ThreeWayMatchingRequired bool            `json:"three_way_matching_required" gorm:"not null"`
	ApprovalThresholdAmount  decimal.Decimal `json:"approval_threshold_amount" gorm:"type:numeric(15,2);not null" validate:"dmin=0,dmax_digits=15,dplaces=2"`
	DefaultPaymentTermsDays  int             `json:"default_payment_terms_days" gorm:"not null" validate:"min=0"`
	UpdatedDate              time.Time       `json:"updated_date" gorm:"autoUpdateTime"`
}

func (Settings) TableName() string { return "procurement_settings" }

func (s *Settings) ApplyDefaults() {
	s.ThreeWayMatchingRequired = true
	s.DefaultPaymentTermsDays = 30
}

// Vendor is the legacy procurement vendor list. It is unrelated to
// accounting vendors and both are served side by side.
type Vendor struct {
	shared.BaseEntity
	Name      string          `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Email     string          `json:"email" gorm:"size:254;not null" validate:"required,email,max=254"`
	Phone     string          `json:"phone" gorm:"size:20;not null" validate:"required,max=20"`
	Address   string          `json:"address" gorm:"type:text;not null" validate:"required"`
	Rating    decimal.Decimal `json:"rating" gorm:"type:numeric(3,2);not null" validate:"dmin=0,dmax_digits=3,dplaces=2"`
	CreatedAt time.Time       `json:"created_at"`
}

func (Vendor) TableName() string { return "procurement_vendor" }
