// Package dashboard serves dashboards, their widgets, KPIs and alerts, and
// the report and metric actions built on them.
package dashboard

import (
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
)

// Module is the URL segment of the dashboard API.
const Module = "dashboard"

const (
	dashboardsTable = "dashboard_dashboards"
	widgetsTable    = "dashboard_widgets"
	usersTable      = "authentication_user"
)

var (
	Dashboards = resource.Definition{
		Module: Module, Path: "dashboards", Name: "Dashboard",
		Filters:         []string{"is_default", "theme_color"},
		Search:          []string{"name", "description"},
		Ordering:        []string{"created_at", "name"},
		DefaultOrdering: []string{"-created_at"},
	}

	Widgets = resource.Definition{
		Module: Module, Path: "widgets", Name: "DashboardWidget",
		Filters:         []string{"dashboard", "widget_type", "is_visible"},
		Search:          []string{"title", "description"},
		Ordering:        []string{"position", "created_at"},
		DefaultOrdering: []string{"position"},
		References:      []resource.Reference{resource.Ref("dashboard", dashboardsTable, shared.Cascade)},
	}

	KPIs = resource.Definition{
		Module: Module, Path: "kpis", Name: "DashboardKPI",
		Filters:         []string{"widget", "status", "trend"},
		Ordering:        []string{"current_value", "trend_percentage", "last_updated"},
		DefaultOrdering: []string{"-last_updated"},
		Unique:          []string{"widget"},
		References:      []resource.Reference{resource.Ref("widget", widgetsTable, shared.Cascade)},
		ReadOnly:        []string{"previous_value", "trend", "trend_percentage"},
	}

	ChartData = resource.Definition{
		Module: Module, Path: "chart-data", Name: "DashboardChartData",
		Filters:         []string{"widget"},
		Ordering:        []string{"timestamp", "value"},
		DefaultOrdering: []string{"-timestamp"},
		References:      []resource.Reference{resource.Ref("widget", widgetsTable, shared.Cascade)},
	}

	Alerts = resource.Definition{
		Module: Module, Path: "alerts", Name: "DashboardAlert",
		Filters:         []string{"dashboard", "alert_type", "is_read"},
		Ordering:        []string{"created_at"},
		DefaultOrdering: []string{"-created_at"},
		References:      []resource.Reference{resource.Ref("dashboard", dashboardsTable, shared.Cascade)},
	}

	Reports = resource.Definition{
		Module: Module, Path: "reports", Name: "DashboardReport",
		Filters:         []string{"dashboard", "frequency", "format", "is_active"},
		Search:          []string{"name", "description"},
		Ordering:        []string{"created_at", "last_generated"},
		DefaultOrdering: []string{"-created_at"},
		References:      []resource.Reference{resource.Ref("dashboard", dashboardsTable, shared.Cascade)},
		ReadOnly:        []string{"last_generated"},
	}

	Metrics = resource.Definition{
		Module: Module, Path: "metrics", Name: "DashboardMetric",
		Filters:         []string{"metric_type", "metric_key"},
		Search:          []string{"metric_name", "metric_key"},
		Ordering:        []string{"timestamp", "metric_value"},
		DefaultOrdering: []string{"-timestamp"},
		Unique:          []string{"metric_key"},
	}

	Activities = resource.Definition{
		Module: Module, Path: "activities", Name: "DashboardActivity",
		Filters:         []string{"user", "dashboard", "action"},
		Ordering:        []string{"timestamp"},
		DefaultOrdering: []string{"-timestamp"},
		References: []resource.Reference{
			resource.Ref("user", usersTable, shared.Cascade),
			resource.Ref("dashboard", dashboardsTable, shared.Cascade),
			resource.Ref("widget", widgetsTable, shared.SetNull),
		},
	}
)
