// Package sitemaintenance exposes site assets, maintenance tasks and work
// orders.
package sitemaintenance

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the site maintenance API.
const Module = "site-maintenance"

var (
	Assets = resource.Definition{
		Module: Module, Path: "maintenance-assets", Name: "MaintenanceAsset",
		Filters:         []string{"asset_type"},
		Search:          []string{"asset_code", "asset_name", "location"},
		DefaultOrdering: []string{"asset_code"},
		Unique:          []string{"asset_code"},
	}

	Tasks = resource.Definition{
		Module: Module, Path: "maintenance-tasks", Name: "MaintenanceTask",
		Filters:         []string{"status", "assigned_to"},
		Search:          []string{"task_number", "asset_name"},
		DefaultOrdering: []string{"scheduled_date"},
		Unique:          []string{"task_number"},
	}

	WorkOrders = resource.Definition{
		Module: Module, Path: "work-orders", Name: "MaintenanceWorkOrder",
		Filters:         []string{"status", "assigned_technician"},
		Search:          []string{"wo_number", "asset_name"},
		DefaultOrdering: []string{"-created_date"},
		Unique:          []string{"wo_number"},
	}
)
