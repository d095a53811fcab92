// Package maintenance exposes equipment and maintenance requests.
package maintenance

import (
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
)

// Module is the URL segment of the maintenance API.
const Module = "maintenance"

var (
	Equipment = resource.Definition{
		Module: Module, Path: "equipment", Name: "Equipment",
		Search:          []string{"name", "code", "location"},
		DefaultOrdering: []string{"name"},
		Unique:          []string{"code"},
	}

	Requests = resource.Definition{
		Module: Module, Path: "requests", Name: "MaintenanceRequest",
		Filters:         []string{"status", "priority", "equipment"},
		Search:          []string{"ticket_no"},
		DefaultOrdering: []string{"-created_at"},
		Unique:          []string{"ticket_no"},
		References:      []resource.Reference{resource.Ref("equipment", "maintenance_equipment", shared.Cascade)},
	}
)
