// Package manufacturing exposes work centers, bills of material and
// production orders.
package manufacturing

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the manufacturing API.
const Module = "manufacturing"

var (
	WorkCenters = resource.Definition{
		Module: Module, Path: "work-centers", Name: "WorkCenter",
		Search:          []string{"work_center_code", "work_center_name", "location"},
		DefaultOrdering: []string{"work_center_code"},
		Unique:          []string{"work_center_code"},
	}

	BillsOfMaterial = resource.Definition{
		Module: Module, Path: "bills-of-material", Name: "BillOfMaterial",
		Search:          []string{"bom_code", "product_name"},
		DefaultOrdering: []string{"bom_code"},
		Unique:          []string{"bom_code"},
	}

	ProductionOrders = resource.Definition{
		Module: Module, Path: "production-orders", Name: "ProductionOrder",
		Filters:         []string{"status"},
		Search:          []string{"order_number", "product_name"},
		Ordering:        []string{"start_date", "end_date", "quantity"},
		DefaultOrdering: []string{"-start_date"},
		Unique:          []string{"order_number"},
	}
)
