// Package sites exposes the company sites.
package sites

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the sites API.
const Module = "sites"

var Sites = resource.Definition{
	Module: Module, Path: "sites", Name: "Site",
	Filters:         []string{"is_active", "country"},
	Search:          []string{"site_code", "site_name", "city"},
	DefaultOrdering: []string{"site_code"},
	Unique:          []string{"site_code"},
}
