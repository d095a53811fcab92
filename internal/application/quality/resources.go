// Package quality exposes quality checks.
package quality

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the quality API.
const Module = "quality"

var Checks = resource.Definition{
	Module: Module, Path: "checks", Name: "QualityCheck",
	Filters:         []string{"status", "check_date"},
	DefaultOrdering: []string{"-check_date"},
}
