// Package sales exposes the sales customer list.
package sales

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the sales API.
const Module = "sales"

var Customers = resource.Definition{
	Module: Module, Path: "customers", Name: "Customer",
	Search:          []string{"name", "email"},
	DefaultOrdering: []string{"name"},
}
