// Package receivable exposes customer invoices, their line items and payments.
package receivable

import (
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
)

// Module is the URL segment of the accounts receivable API.
const Module = "accounts-receivable"

const invoicesTable = "ar_customer_invoices"

var (
	CustomerInvoices = resource.Definition{
		Module: Module, Path: "customer-invoices", Name: "CustomerInvoice",
		Filters:         []string{"status", "customer_name"},
		Search:          []string{"invoice_number", "customer_name"},
		Ordering:        []string{"invoice_date", "due_date", "invoice_amount"},
		DefaultOrdering: []string{"-invoice_date"},
		Unique:          []string{"invoice_number"},
	}

	InvoiceLineItems = resource.Definition{
		Module: Module, Path: "invoice-line-items", Name: "InvoiceLineItem",
		Filters:    []string{"customer_invoice"},
		Search:     []string{"description"},
		References: []resource.Reference{resource.Ref("customer_invoice", invoicesTable, shared.Cascade)},
		ReadOnly:   []string{"line_total"},
	}

	CustomerPayments = resource.Definition{
		Module: Module, Path: "customer-payments", Name: "CustomerPayment",
		Filters:         []string{"status", "customer_invoice"},
		Search:          []string{"payment_number"},
		Ordering:        []string{"payment_date", "payment_amount"},
		DefaultOrdering: []string{"-payment_date"},
		Unique:          []string{"payment_number"},
		References:      []resource.Reference{resource.Ref("customer_invoice", invoicesTable, shared.Cascade)},
	}

	Reconciliations = resource.Definition{
		Module: Module, Path: "ar-reconciliations", Name: "ARReconciliation",
		Filters:  []string{"status"},
		Search:   []string{"reconciliation_period"},
		ReadOnly: []string{"difference_amount"},
	}

	Discounts = resource.Definition{
		Module: Module, Path: "ar-discounts", Name: "ARDiscount",
		Filters: []string{"discount_type"},
		Search:  []string{"discount_code"},
		Unique:  []string{"discount_code"},
	}

	Settings = resource.Definition{
		Module: Module, Path: "ar-settings", Name: "ARSettings",
	}

	Agings = resource.Definition{
		Module: Module, Path: "ar-agings", Name: "ARAging",
		Search:          []string{"customer_name"},
		Ordering:        []string{"report_date", "total_outstanding"},
		DefaultOrdering: []string{"-report_date"},
	}
)
