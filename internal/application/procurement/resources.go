// Package procurement exposes purchase orders, receipts, quotations and
// three-way matching records.
package procurement

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the procurement API.
const Module = "procurement"

var (
	PurchaseOrders = resource.Definition{
		Module: Module, Path: "purchase-orders", Name: "PurchaseOrder",
		Filters:         []string{"status"},
		Search:          []string{"po_number", "vendor_name"},
		Ordering:        []string{"po_date", "delivery_date", "total_amount"},
		DefaultOrdering: []string{"-po_date"},
		Unique:          []string{"po_number"},
	}

	POLineItems = resource.Definition{
		Module: Module, Path: "po-line-items", Name: "POLineItem",
		Filters:  []string{"purchase_order_number"},
		Search:   []string{"item_description"},
		ReadOnly: []string{"line_total"},
	}

	GoodsReceipts = resource.Definition{
		Module: Module, Path: "goods-receipts", Name: "GoodsReceipt",
		Filters:         []string{"status", "purchase_order_number"},
		Search:          []string{"receipt_number", "received_by"},
		DefaultOrdering: []string{"-receipt_date"},
		Unique:          []string{"receipt_number"},
	}

	RFQs = resource.Definition{
		Module: Module, Path: "rfqs", Name: "RequestForQuotation",
		Filters:         []string{"status"},
		Search:          []string{"rfq_number", "items_description"},
		DefaultOrdering: []string{"-rfq_date"},
		Unique:          []string{"rfq_number"},
	}

	VendorQuotations = resource.Definition{
		Module: Module, Path: "vendor-quotations", Name: "VendorQuotation",
		Filters:         []string{"status", "rfq_number"},
		Search:          []string{"quotation_number", "vendor_name"},
		DefaultOrdering: []string{"-quotation_date"},
		Unique:          []string{"quotation_number"},
	}

	ThreeWayMatchings = resource.Definition{
		Module: Module, Path: "three-way-matchings", Name: "ThreeWayMatching",
		Filters:         []string{"status"},
		Search:          []string{"po_number", "goods_receipt_number", "invoice_number"},
		DefaultOrdering: []string{"-matching_date"},
	}

	Settings = resource.Definition{
		Module: Module, Path: "settings", Name: "ProcurementSettings",
	}

	Vendors = resource.Definition{
		Module: Module, Path: "vendors", Name: "Vendor",
		Search:          []string{"name", "email"},
		DefaultOrdering: []string{"name"},
	}
)
