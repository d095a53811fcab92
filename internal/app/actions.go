package app

import (
	"net/http"

	dashboardapp "github.com/erp/erpapi/internal/application/dashboard"
	hrapp "github.com/erp/erpapi/internal/application/hr"
	payableapp "github.com/erp/erpapi/internal/application/payable"
	receivableapp "github.com/erp/erpapi/internal/application/receivable"
	"github.com/erp/erpapi/internal/interfaces/http/openapi"
)

// actions documents the routes served outside the generic resources.
var actions = []openapi.Action{
	{Method: http.MethodGet, Path: "/system/info/", Tag: "System", Summary: "Service name, version and uptime"},

	dashboardAction(http.MethodGet, "/dashboards/default_dashboard/", "Default dashboard with widgets and alerts", false),
	dashboardAction(http.MethodGet, "/dashboards/:id/analytics/", "Recent activity and widget statistics", false),
	dashboardAction(http.MethodPost, "/widgets/:id/toggle_visibility/", "Toggle widget visibility", false),
	dashboardAction(http.MethodPost, "/kpis/:id/update_value/", "Record a new KPI value", true),
	dashboardAction(http.MethodPost, "/alerts/:id/mark_as_read/", "Mark an alert as read", false),
	dashboardAction(http.MethodPost, "/alerts/mark_all_as_read/", "Mark every unread alert as read", false),
	dashboardAction(http.MethodPost, "/reports/:id/generate_report/", "Render and store a report", false),
	dashboardAction(http.MethodGet, "/metrics/latest_metrics/", "Newest metric values", false),
	dashboardAction(http.MethodGet, "/metrics/metric_summary/", "Metric counts and averages by type", false),

	{Method: http.MethodPost, Path: "/" + hrapp.Module + "/leaves/:id/approve/", Tag: openapi.Tag(hrapp.Module), Summary: "Approve a leave", Body: true},
	{Method: http.MethodPost, Path: "/" + hrapp.Module + "/leaves/:id/reject/", Tag: openapi.Tag(hrapp.Module), Summary: "Reject a leave"},

	{Method: http.MethodGet, Path: "/" + payableapp.Module + "/vendor-bills/:id/summary/", Tag: openapi.Tag(payableapp.Module), Summary: "Vendor bill totals"},
	{Method: http.MethodGet, Path: "/" + receivableapp.Module + "/customer-invoices/:id/summary/", Tag: openapi.Tag(receivableapp.Module), Summary: "Customer invoice totals"},
}

func dashboardAction(method, path, summary string, body bool) openapi.Action {
	return openapi.Action{
		Method:  method,
		Path:    "/" + dashboardapp.Module + path,
		Tag:     openapi.Tag(dashboardapp.Module),
		Summary: summary,
		Body:    body,
	}
}
