// Package dashboard models configurable dashboards, their widgets and KPIs,
// alerts, scheduled reports and system metrics.
package dashboard

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dashboard is a named layout of widgets.
type Dashboard struct {
	shared.BaseEntity
	Name        string    `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Description string    `json:"description" gorm:"type:text"`
	IsDefault   bool      `json:"is_default" gorm:"not null"`
	Layout      string    `json:"layout" gorm:"size:10;not null" validate:"oneof=1 2 3 4"`
	ThemeColor  string    `json:"theme_color" gorm:"size:20;not null" validate:"max=20"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by" gorm:"size:255" validate:"max=255"`
}

func (Dashboard) TableName() string { return "dashboard_dashboards" }

func (d *Dashboard) ApplyDefaults() {
	d.Layout = "2"
	d.ThemeColor = "blue"
}

// WidgetType is the visual kind of a widget
type WidgetType string

const (
	WidgetCard     WidgetType = "CARD"
	WidgetChart    WidgetType = "CHART"
	WidgetTable    WidgetType = "TABLE"
	WidgetGauge    WidgetType = "GAUGE"
	WidgetStat     WidgetType = "STAT"
	WidgetTimeline WidgetType = "TIMELINE"
	WidgetMap      WidgetType = "MAP"
	WidgetCalendar WidgetType = "CALENDAR"
)

// ChartType applies to chart widgets only
type ChartType string

const (
	ChartLine     ChartType = "LINE"
	ChartBar      ChartType = "BAR"
	ChartPie      ChartType = "PIE"
	ChartDoughnut ChartType = "DOUGHNUT"
	ChartArea     ChartType = "AREA"
	ChartScatter  ChartType = "SCATTER"
)

// Widget is one tile on a dashboard.
type Widget struct {
	shared.BaseEntity
	DashboardID     uuid.UUID   `json:"dashboard" gorm:"type:uuid;not null;index" validate:"required"`
	Title           string      `json:"title" gorm:"size:255;not null" validate:"required,max=255"`
	Description     string      `json:"description" gorm:"type:text"`
	WidgetType      WidgetType  `json:"widget_type" gorm:"size:20;not null" validate:"required,oneof=CARD CHART TABLE GAUGE STAT TIMELINE MAP CALENDAR"`
	ChartType       *ChartType  `json:"chart_type" gorm:"size:20" validate:"omitempty,oneof=LINE BAR PIE DOUGHNUT AREA SCATTER"`
	Position        int         `json:"position" gorm:"not null"`
	Width           int         `json:"width" gorm:"not null" validate:"min=1,max=4"`
	Height          int         `json:"height" gorm:"not null" validate:"min=1,max=4"`
	IsVisible       bool        `json:"is_visible" gorm:"not null"`
	RefreshInterval int         `json:"refresh_interval" gorm:"not null"`
	DataSource      string      `json:"data_source" gorm:"size:255" validate:"max=255"`
	Configuration   shared.JSON `json:"configuration"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (Widget) TableName() string { return "dashboard_widgets" }

func (w *Widget) ApplyDefaults() {
	w.Width = 1
	w.Height = 1
	w.IsVisible = true
	w.RefreshInterval = 300
	w.Configuration = shared.JSON("{}")
}

// KPIStatus flags a KPI against its thresholds
type KPIStatus string

const (
	KPIStatusActive   KPIStatus = "ACTIVE"
	KPIStatusInactive KPIStatus = "INACTIVE"
	KPIStatusWarning  KPIStatus = "WARNING"
	KPIStatusCritical KPIStatus = "CRITICAL"
)

// KPI is a key performance indicator bound to exactly one widget.
type KPI struct {
	shared.BaseEntity
	WidgetID          uuid.UUID        `json:"widget" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	MetricName        string           `json:"metric_name" gorm:"size:255;not null" validate:"required,max=255"`
	CurrentValue      decimal.Decimal  `json:"current_value" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	TargetValue       *decimal.Decimal `json:"target_value" gorm:"type:numeric(15,2)" validate:"omitempty,dmax_digits=15,dplaces=2"`
	PreviousValue     *decimal.Decimal `json:"previous_value" gorm:"type:numeric(15,2)" validate:"omitempty,dmax_digits=15,dplaces=2"`
	Unit              string           `json:"unit" gorm:"size:50" validate:"max=50"`
	Status            KPIStatus        `json:"status" gorm:"size:20;not null" validate:"oneof=ACTIVE INACTIVE WARNING CRITICAL"`
	ThresholdWarning  *decimal.Decimal `json:"threshold_warning" gorm:"type:numeric(15,2)" validate:"omitempty,dmax_digits=15,dplaces=2"`
	ThresholdCritical *decimal.Decimal `json:"threshold_critical" gorm:"type:numeric(15,2)" validate:"omitempty,dmax_digits=15,dplaces=2"`
	Trend             *Trend           `json:"trend" gorm:"size:10" validate:"omitempty,oneof=UP DOWN STABLE"`
	TrendPercentage   *decimal.Decimal `json:"trend_percentage" gorm:"type:numeric(7,2)"`
	LastUpdated       time.Time        `json:"last_updated" gorm:"autoUpdateTime"`
}

func (KPI) TableName() string { return "dashboard_kpis" }

func (k *KPI) ApplyDefaults() { k.Status = KPIStatusActive }

// UpdateValue records a new reading: the old current value becomes the
// previous one and the trend is recomputed.
func (k *KPI) UpdateValue(current decimal.Decimal) {
	previous := k.CurrentValue
	k.PreviousValue = &previous
	k.CurrentValue = current

	change, ok := ComputeTrend(current, k.PreviousValue)
	if !ok {
		k.Trend = nil
		k.TrendPercentage = nil
		return
	}
	k.Trend = &change.Direction
	k.TrendPercentage = &change.Percentage
}

// ChartData is one data point of a chart widget.
type ChartData struct {
	shared.BaseEntity
	WidgetID  uuid.UUID       `json:"widget" gorm:"type:uuid;not null;index" validate:"required"`
	Label     string          `json:"label" gorm:"size:255;not null" validate:"required,max=255"`
	Value     decimal.Decimal `json:"value" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	Timestamp time.Time       `json:"timestamp" gorm:"autoCreateTime"`
	Metadata  shared.JSON     `json:"metadata"`
}

func (ChartData) TableName() string { return "dashboard_chart_data" }

func (c *ChartData) ApplyDefaults() { c.Metadata = shared.JSON("{}") }

// AlertType is the severity of an alert
type AlertType string

const (
	AlertInfo    AlertType = "INFO"
	AlertWarning AlertType = "WARNING"
	AlertError   AlertType = "ERROR"
	AlertSuccess AlertType = "SUCCESS"
)

// Alert is a notification shown on a dashboard.
type Alert struct {
	shared.BaseEntity
	DashboardID uuid.UUID  `json:"dashboard" gorm:"type:uuid;not null;index" validate:"required"`
	AlertType   AlertType  `json:"alert_type" gorm:"size:20;not null" validate:"required,oneof=INFO WARNING ERROR SUCCESS"`
	Title       string     `json:"title" gorm:"size:255;not null" validate:"required,max=255"`
	Message     string     `json:"message" gorm:"type:text;not null" validate:"required"`
	IsRead      bool       `json:"is_read" gorm:"not null"`
	CreatedAt   time.Time  `json:"created_at"`
	DismissedAt *time.Time `json:"dismissed_at"`
	ActionURL   string     `json:"action_url" gorm:"size:200" validate:"omitempty,url,max=200"`
}

func (Alert) TableName() string { return "dashboard_alerts" }

// Activity records a user action on a dashboard.
type Activity struct {
	shared.BaseEntity
	UserID      uuid.UUID   `json:"user" gorm:"type:uuid;not null;index" validate:"required"`
	DashboardID uuid.UUID   `json:"dashboard" gorm:"type:uuid;not null;index" validate:"required"`
	Action      string      `json:"action" gorm:"size:50;not null" validate:"required,max=50"`
	WidgetID    *uuid.UUID  `json:"widget" gorm:"type:uuid"`
	Details     shared.JSON `json:"details"`
	Timestamp   time.Time   `json:"timestamp" gorm:"autoCreateTime"`
}

func (Activity) TableName() string { return "dashboard_activities" }

func (a *Activity) ApplyDefaults() { a.Details = shared.JSON("{}") }
