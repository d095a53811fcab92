package dashboard

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/dashboard"
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Detail is a dashboard with its widgets and alerts.
type Detail struct {
	dashboard.Dashboard
	Widgets []dashboard.Widget `json:"widgets"`
	Alerts  []dashboard.Alert  `json:"alerts"`
}

// Analytics counts the contents of a dashboard.
type Analytics struct {
	TotalWidgets    int64 `json:"total_widgets"`
	ActiveWidgets   int64 `json:"active_widgets"`
	TotalAlerts     int64 `json:"total_alerts"`
	UnreadAlerts    int64 `json:"unread_alerts"`
	TotalActivities int64 `json:"total_activities"`
}

// MarkAllResult reports how many alerts were marked read.
type MarkAllResult struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ErrNoDashboard is returned when no dashboard exists at all.
var ErrNoDashboard = shared.NewNotFoundError("No dashboard found")

// DashboardService implements the dashboard, widget, KPI and alert actions.
type DashboardService struct {
	dashboards *resource.Service[dashboard.Dashboard]
	widgets    *resource.Service[dashboard.Widget]
	kpis       *resource.Service[dashboard.KPI]
	alerts     *resource.Service[dashboard.Alert]
	activities shared.Repository[dashboard.Activity]
	logger     *zap.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(
	dashboards *resource.Service[dashboard.Dashboard],
	widgets *resource.Service[dashboard.Widget],
	kpis *resource.Service[dashboard.KPI],
	alerts *resource.Service[dashboard.Alert],
	activities shared.Repository[dashboard.Activity],
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		dashboards: dashboards,
		widgets:    widgets,
		kpis:       kpis,
		alerts:     alerts,
		activities: activities,
		logger:     logger,
	}
}

// Default returns the first default dashboard, falling back to the first
// dashboard of any kind.
func (s *DashboardService) Default(ctx context.Context) (*Detail, error) {
	order := []shared.Order{{Field: "created_at", Desc: true}, {Field: "id"}}

	q := shared.Where(map[string]any{"is_default": true})
	q.Order, q.Limit = order, 1
	found, err := s.dashboards.Repository().FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		found, err = s.dashboards.Repository().FindAll(ctx, shared.Query{Order: order, Limit: 1})
		if err != nil {
			return nil, err
		}
	}
	if len(found) == 0 {
		return nil, ErrNoDashboard
	}
	return s.detail(ctx, &found[0])
}

// Detail returns a dashboard with its widgets and alerts.
func (s *DashboardService) Detail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	d, err := s.dashboards.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, d)
}

func (s *DashboardService) detail(ctx context.Context, d *dashboard.Dashboard) (*Detail, error) {
	owned := shared.Where(map[string]any{"dashboard": d.ID})

	widgets := owned
	widgets.Order = []shared.Order{{Field: "position"}, {Field: "id"}}
	ws, err := s.widgets.Repository().FindAll(ctx, widgets)
	if err != nil {
		return nil, err
	}

	alerts := owned
	alerts.Order = []shared.Order{{Field: "created_at", Desc: true}, {Field: "id"}}
	as, err := s.alerts.Repository().FindAll(ctx, alerts)
	if err != nil {
		return nil, err
	}

	return &Detail{Dashboard: *d, Widgets: nonNil(ws), Alerts: nonNil(as)}, nil
}

// Analytics counts widgets, alerts and activities of a dashboard.
func (s *DashboardService) Analytics(ctx context.Context, id uuid.UUID) (*Analytics, error) {
	if _, err := s.dashboards.Repository().FindByID(ctx, id); err != nil {
		return nil, err
	}

	var (
		a   Analytics
		err error
	)
	widgets, alerts := s.widgets.Repository(), s.alerts.Repository()
	if a.TotalWidgets, err = widgets.Count(ctx, shared.Where(map[string]any{"dashboard": id})); err != nil {
		return nil, err
	}
	if a.ActiveWidgets, err = widgets.Count(ctx, shared.Where(map[string]any{"dashboard": id, "is_visible": true})); err != nil {
		return nil, err
	}
	if a.TotalAlerts, err = alerts.Count(ctx, shared.Where(map[string]any{"dashboard": id})); err != nil {
		return nil, err
	}
	if a.UnreadAlerts, err = alerts.Count(ctx, shared.Where(map[string]any{"dashboard": id, "is_read": false})); err != nil {
		return nil, err
	}
	if a.TotalActivities, err = s.activities.Count(ctx, shared.Where(map[string]any{"dashboard": id})); err != nil {
		return nil, err
	}
	return &a, nil
}

// ToggleVisibility flips whether a widget is shown.
func (s *DashboardService) ToggleVisibility(ctx context.Context, id uuid.UUID) (bool, error) {
	w, err := s.widgets.Modify(ctx, id, func(w *dashboard.Widget) error {
		w.IsVisible = !w.IsVisible
		return nil
	})
	if err != nil {
		return false, err
	}
	return w.IsVisible, nil
}

// UpdateKPIValue records a new reading of a KPI from a body holding
// current_value and recomputes its trend.
func (s *DashboardService) UpdateKPIValue(ctx context.Context, id uuid.UUID, body []byte) (*dashboard.KPI, error) {
	in, err := s.kpis.Input(body, "current_value")
	if err != nil {
		return nil, err
	}
	current := in.CurrentValue

	kpi, err := s.kpis.Modify(ctx, id, func(k *dashboard.KPI) error {
		k.UpdateValue(current)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("KPI value updated",
		zap.String("kpi_id", id.String()),
		zap.String("current_value", current.String()),
		zap.Stringp("trend", (*string)(kpi.Trend)),
	)
	return kpi, nil
}

// MarkAsRead marks one alert read.
func (s *DashboardService) MarkAsRead(ctx context.Context, id uuid.UUID) (bool, error) {
	a, err := s.alerts.Modify(ctx, id, func(a *dashboard.Alert) error {
		a.IsRead = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return a.IsRead, nil
}

// MarkAllAsRead marks every unread alert of the dashboard named by the
// dashboard_id body field. Without a dashboard_id nothing changes.
func (s *DashboardService) MarkAllAsRead(ctx context.Context, body []byte) (*MarkAllResult, error) {
	var in struct {
		DashboardID *string `json:"dashboard_id"`
	}
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, shared.FieldError(shared.NonFieldErrors, "Invalid data. Expected a dictionary with a dashboard_id string.")
		}
	}

	result := &MarkAllResult{Status: "All alerts marked as read"}
	if in.DashboardID == nil || strings.TrimSpace(*in.DashboardID) == "" {
		return result, nil
	}
	dashboardID, err := uuid.Parse(strings.TrimSpace(*in.DashboardID))
	if err != nil {
		return nil, shared.FieldError("dashboard_id", "Must be a valid UUID.")
	}

	result.Count, err = s.alerts.Repository().UpdateWhere(ctx,
		map[string]any{"dashboard": dashboardID, "is_read": false},
		map[string]any{"is_read": true},
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
