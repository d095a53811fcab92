// Package payable exposes vendor bills, their line items and payments.
package payable

import (
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
)

// Module is the URL segment of the accounts payable API.
const Module = "accounts-payable"

const billsTable = "ap_vendor_bills"

var (
	VendorBills = resource.Definition{
		Module: Module, Path: "vendor-bills", Name: "VendorBill",
		Filters:         []string{"status", "vendor_name"},
		Search:          []string{"bill_number", "vendor_name"},
		Ordering:        []string{"bill_date", "due_date", "bill_amount"},
		DefaultOrdering: []string{"-bill_date"},
		Unique:          []string{"bill_number"},
	}

	VendorBillLineItems = resource.Definition{
		Module: Module, Path: "vendor-bill-line-items", Name: "VendorBillLineItem",
		Filters:    []string{"vendor_bill"},
		Search:     []string{"description"},
		References: []resource.Reference{resource.Ref("vendor_bill", billsTable, shared.Cascade)},
		ReadOnly:   []string{"line_total"},
	}

	VendorPayments = resource.Definition{
		Module: Module, Path: "vendor-payments", Name: "VendorPayment",
		Filters:         []string{"status", "vendor_bill"},
		Search:          []string{"payment_number"},
		Ordering:        []string{"payment_date", "payment_amount"},
		DefaultOrdering: []string{"-payment_date"},
		Unique:          []string{"payment_number"},
		References:      []resource.Reference{resource.Ref("vendor_bill", billsTable, shared.Cascade)},
	}

	Reconciliations = resource.Definition{
		Module: Module, Path: "ap-reconciliations", Name: "APReconciliation",
		Filters:  []string{"status"},
		Search:   []string{"reconciliation_period"},
		ReadOnly: []string{"difference_amount"},
	}

	Discounts = resource.Definition{
		Module: Module, Path: "ap-discounts", Name: "APDiscount",
		Filters: []string{"discount_type"},
		Search:  []string{"discount_code"},
		Unique:  []string{"discount_code"},
	}

	Settings = resource.Definition{
		Module: Module, Path: "ap-settings", Name: "APSettings",
	}

	Agings = resource.Definition{
		Module: Module, Path: "ap-agings", Name: "APAging",
		Search:          []string{"vendor_name"},
		Ordering:        []string{"report_date", "total_outstanding"},
		DefaultOrdering: []string{"-report_date"},
	}
)
