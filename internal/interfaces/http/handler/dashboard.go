package handler

import (
	"net/http"

	dashboardapp "github.com/erp/erpapi/internal/application/dashboard"
	"github.com/erp/erpapi/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the dashboard module actions.
type DashboardHandler struct {
	dashboards *dashboardapp.DashboardService
	metrics    *dashboardapp.MetricService
	reports    *dashboardapp.ReportService
	log        *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(
	dashboards *dashboardapp.DashboardService,
	metrics *dashboardapp.MetricService,
	reports *dashboardapp.ReportService,
	log *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, metrics: metrics, reports: reports, log: log}
}

// Register adds the action routes below rg. The dashboard detail route is
// served through WithRetrieve on the dashboards resource.
func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	m := "/" + dashboardapp.Module
	rg.GET(m+"/dashboards/default_dashboard/", h.DefaultDashboard)
	rg.GET(m+"/dashboards/:id/analytics/", h.Analytics)
	rg.POST(m+"/widgets/:id/toggle_visibility/", h.ToggleVisibility)
	rg.POST(m+"/kpis/:id/update_value/", h.UpdateKPIValue)
	rg.POST(m+"/alerts/:id/mark_as_read/", h.MarkAsRead)
	rg.POST(m+"/alerts/mark_all_as_read/", h.MarkAllAsRead)
	rg.POST(m+"/reports/:id/generate_report/", h.GenerateReport)
	rg.GET(m+"/metrics/latest_metrics/", h.LatestMetrics)
	rg.GET(m+"/metrics/metric_summary/", h.MetricSummary)
}

// DefaultDashboard answers the default dashboard with its widgets and alerts.
func (h *DashboardHandler) DefaultDashboard(c *gin.Context) {
	d, err := h.dashboards.Default(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Detail answers one dashboard with its widgets and alerts.
func (h *DashboardHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.dashboards.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Analytics answers widget, alert and activity counts of a dashboard.
func (h *DashboardHandler) Analytics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.dashboards.Analytics(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ToggleVisibility flips a widget's visibility.
func (h *DashboardHandler) ToggleVisibility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	visible, err := h.dashboards.ToggleVisibility(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.VisibilityResponse{IsVisible: visible})
}

// UpdateKPIValue records a new KPI value and recomputes its trend.
func (h *DashboardHandler) UpdateKPIValue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}
	kpi, err := h.dashboards.UpdateKPIValue(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, kpi)
}

// MarkAsRead marks one alert as read.
func (h *DashboardHandler) MarkAsRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	read, err := h.dashboards.MarkAsRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReadResponse{IsRead: read})
}

// MarkAllAsRead marks every unread alert of a dashboard as read.
func (h *DashboardHandler) MarkAllAsRead(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	res, err := h.dashboards.MarkAllAsRead(c.Request.Context(), body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GenerateReport renders a report and stores it.
func (h *DashboardHandler) GenerateReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.reports.Generate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// LatestMetrics answers the newest metrics, optionally of one metric_type.
func (h *DashboardHandler) LatestMetrics(c *gin.Context) {
	metrics, err := h.metrics.Latest(c.Request.Context(), c.Query("metric_type"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// MetricSummary answers the newest metric of every metric type.
func (h *DashboardHandler) MetricSummary(c *gin.Context) {
	summary, err := h.metrics.Summary(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
