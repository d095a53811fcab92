// Package production exposes shop floor work orders.
package production

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the production API.
const Module = "production"

var WorkOrders = resource.Definition{
	Module: Module, Path: "work-orders", Name: "WorkOrder",
	Filters:         []string{"status"},
	Search:          []string{"work_order_no"},
	DefaultOrdering: []string{"-created_at"},
	Unique:          []string{"work_order_no"},
}
