package receivable

import (
	"context"

	"github.com/erp/erpapi/internal/domain/receivable"
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InvoiceSummary totals an invoice from its line items and received payments.
type InvoiceSummary struct {
	CustomerInvoice   uuid.UUID                `json:"customer_invoice"`
	InvoiceNumber     string                   `json:"invoice_number"`
	Status            receivable.InvoiceStatus `json:"status"`
	InvoiceAmount     decimal.Decimal          `json:"invoice_amount"`
	LineItemCount     int                      `json:"line_item_count"`
	LineItemsTotal    decimal.Decimal          `json:"line_items_total"`
	ReceivedAmount    decimal.Decimal          `json:"received_amount"`
	OutstandingAmount decimal.Decimal          `json:"outstanding_amount"`
}

// SummaryService answers the invoice summary action.
type SummaryService struct {
	invoices shared.Repository[receivable.CustomerInvoice]
	items    shared.Repository[receivable.InvoiceLineItem]
	payments shared.Repository[receivable.CustomerPayment]
}

// NewSummaryService creates a SummaryService.
func NewSummaryService(
	invoices shared.Repository[receivable.CustomerInvoice],
	items shared.Repository[receivable.InvoiceLineItem],
	payments shared.Repository[receivable.CustomerPayment],
) *SummaryService {
	return &SummaryService{invoices: invoices, items: items, payments: payments}
}

// Summary returns the totals of one invoice.
func (s *SummaryService) Summary(ctx context.Context, id uuid.UUID) (*InvoiceSummary, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindAll(ctx, shared.Where(map[string]any{"customer_invoice": id}))
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.FindAll(ctx, shared.Where(map[string]any{
		"customer_invoice": id,
		"status":           receivable.PaymentStatusReceived,
	}))
	if err != nil {
		return nil, err
	}

	received := shared.Sum(lo.Map(payments, func(p receivable.CustomerPayment, _ int) decimal.Decimal { return p.PaymentAmount })...)
	return &InvoiceSummary{
		CustomerInvoice:   invoice.ID,
		InvoiceNumber:     invoice.InvoiceNumber,
		Status:            invoice.Status,
		InvoiceAmount:     invoice.InvoiceAmount,
		LineItemCount:     len(items),
		LineItemsTotal:    shared.Sum(lo.Map(items, func(l receivable.InvoiceLineItem, _ int) decimal.Decimal { return l.LineTotal })...),
		ReceivedAmount:    received,
		OutstandingAmount: invoice.InvoiceAmount.Sub(received),
	}, nil
}
