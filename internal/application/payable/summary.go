package payable

import (
	"context"

	"github.com/erp/erpapi/internal/domain/payable"
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// BillSummary totals a bill from its line items and processed payments.
type BillSummary struct {
	VendorBill        uuid.UUID          `json:"vendor_bill"`
	BillNumber        string             `json:"bill_number"`
	Status            payable.BillStatus `json:"status"`
	BillAmount        decimal.Decimal    `json:"bill_amount"`
	LineItemCount     int                `json:"line_item_count"`
	LineItemsTotal    decimal.Decimal    `json:"line_items_total"`
	PaidAmount        decimal.Decimal    `json:"paid_amount"`
	OutstandingAmount decimal.Decimal    `json:"outstanding_amount"`
}

// SummaryService answers the bill summary action.
type SummaryService struct {
	bills    shared.Repository[payable.VendorBill]
	items    shared.Repository[payable.VendorBillLineItem]
	payments shared.Repository[payable.VendorPayment]
}

// NewSummaryService creates a SummaryService.
func NewSummaryService(
	bills shared.Repository[payable.VendorBill],
	items shared.Repository[payable.VendorBillLineItem],
	payments shared.Repository[payable.VendorPayment],
) *SummaryService {
	return &SummaryService{bills: bills, items: items, payments: payments}
}

// Summary returns the totals of one bill.
func (s *SummaryService) Summary(ctx context.Context, id uuid.UUID) (*BillSummary, error) {
	bill, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindAll(ctx, shared.Where(map[string]any{"vendor_bill": id}))
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.FindAll(ctx, shared.Where(map[string]any{
		"vendor_bill": id,
		"status":      payable.PaymentStatusProcessed,
	}))
	if err != nil {
		return nil, err
	}

	paid := shared.Sum(lo.Map(payments, func(p payable.VendorPayment, _ int) decimal.Decimal { return p.PaymentAmount })...)
	return &BillSummary{
		VendorBill:        bill.ID,
		BillNumber:        bill.BillNumber,
		Status:            bill.Status,
		BillAmount:        bill.BillAmount,
		LineItemCount:     len(items),
		LineItemsTotal:    shared.Sum(lo.Map(items, func(l payable.VendorBillLineItem, _ int) decimal.Decimal { return l.LineTotal })...),
		PaidAmount:        paid,
		OutstandingAmount: bill.BillAmount.Sub(paid),
	}, nil
}
