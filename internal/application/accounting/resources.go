// Package accounting exposes the accounting records and keeps their audit trail.
package accounting

import (
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
)

// Module is the URL segment of the accounting API.
const Module = "accounting"

var (
	Vendors = resource.Definition{
		Module: Module, Path: "vendors", Name: "Vendor",
		Filters:         []string{"is_active"},
		Search:          []string{"vendor_code", "vendor_name", "email"},
		DefaultOrdering: []string{"vendor_code"},
		Unique:          []string{"vendor_code"},
		Audited:         true,
	}

	VendorInvoices = resource.Definition{
		Module: Module, Path: "vendor-invoices", Name: "VendorInvoice",
		Filters:         []string{"status"},
		Search:          []string{"invoice_number", "vendor_name"},
		DefaultOrdering: []string{"-invoice_date"},
		Unique:          []string{"invoice_number"},
		Audited:         true,
	}

	VendorPayments = resource.Definition{
		Module: Module, Path: "vendor-payments", Name: "VendorPayment",
		Filters:         []string{"status"},
		Ordering:        []string{"payment_date"},
		DefaultOrdering: []string{"-payment_date"},
		Unique:          []string{"payment_number"},
		References: []resource.Reference{
			resource.Ref("vendor_invoice", "accounting_vendor_invoices", shared.Cascade),
		},
		Audited: true,
	}

	AuditLogs = resource.Definition{
		Module: Module, Path: "audit-logs", Name: "AuditLog",
		Filters:         []string{"action", "entity_type", "user"},
		Search:          []string{"entity_type", "user"},
		Ordering:        []string{"timestamp"},
		DefaultOrdering: []string{"-timestamp"},
		AppendOnly:      true,
	}

	LedgerEntries = resource.Definition{
		Module: Module, Path: "ledger-entries", Name: "LedgerEntry",
		Filters:         []string{"entry_type"},
		Search:          []string{"entry_number", "account_code"},
		DefaultOrdering: []string{"-entry_date"},
		Unique:          []string{"entry_number"},
		Audited:         true,
	}

	Currencies = resource.Definition{
		Module: Module, Path: "currencies", Name: "Currency",
		Filters:         []string{"is_base_currency"},
		Search:          []string{"code", "name"},
		DefaultOrdering: []string{"code"},
		Unique:          []string{"code"},
		Audited:         true,
	}

	TaxRates = resource.Definition{
		Module: Module, Path: "tax-rates", Name: "TaxRate",
		Filters: []string{"tax_type"},
		Search:  []string{"tax_code"},
		Unique:  []string{"tax_code"},
		Audited: true,
	}

	Customers = resource.Definition{
		Module: Module, Path: "customers", Name: "Customer",
		Filters:         []string{"customer_type", "is_active"},
		Search:          []string{"code", "name", "email"},
		DefaultOrdering: []string{"name"},
		Unique:          []string{"code"},
		Audited:         true,
	}

	FixedAssets = resource.Definition{
		Module: Module, Path: "fixed-assets", Name: "FixedAsset",
		Filters: []string{"asset_type"},
		Search:  []string{"asset_code", "asset_name"},
		Unique:  []string{"asset_code"},
		Audited: true,
	}

	BankProfiles = resource.Definition{
		Module: Module, Path: "bank-profiles", Name: "BankProfile",
		Filters: []string{"currency", "is_active"},
		Search:  []string{"bank_name", "account_number"},
		Unique:  []string{"account_number"},
		Audited: true,
	}

	BankStatements = resource.Definition{
		Module: Module, Path: "bank-statements", Name: "BankStatement",
		Filters:         []string{"status"},
		Ordering:        []string{"statement_date"},
		DefaultOrdering: []string{"-statement_date"},
		References: []resource.Reference{
			resource.Ref("bank_profile", "accounting_bank_profiles", shared.Cascade),
		},
		Audited: true,
	}

	ReconciliationEntries = resource.Definition{
		Module: Module, Path: "reconciliation-entries", Name: "ReconciliationEntry",
		Filters: []string{"status"},
		Search:  []string{"reference_number"},
		Unique:  []string{"reference_number"},
		Audited: true,
	}
)
