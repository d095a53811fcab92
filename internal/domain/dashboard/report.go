package dashboard

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is how often a report is scheduled
type Frequency string

const (
	FrequencyDaily     Frequency = "DAILY"
	FrequencyWeekly    Frequency = "WEEKLY"
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyYearly    Frequency = "YEARLY"
)

// Next returns the schedule time following t.
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	case FrequencyYearly:
		return t.AddDate(1, 0, 0)
	}
	return t
}

// ReportFormat is the output format of a report
type ReportFormat string

const (
	FormatPDF   ReportFormat = "PDF"
	FormatExcel ReportFormat = "EXCEL"
	FormatCSV   ReportFormat = "CSV"
	FormatEmail ReportFormat = "EMAIL"
)

// Report is a scheduled export of a dashboard.
type Report struct {
	shared.BaseEntity
	DashboardID   uuid.UUID    `json:"dashboard" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string       `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Description   string       `json:"description" gorm:"type:text"`
	Frequency     Frequency    `json:"frequency" gorm:"size:20;not null" validate:"required,oneof=DAILY WEEKLY MONTHLY QUARTERLY YEARLY"`
	Format        ReportFormat `json:"format" gorm:"size:20;not null" validate:"required,oneof=PDF EXCEL CSV EMAIL"`
	Recipients    shared.JSON  `json:"recipients"`
	IsActive      bool         `json:"is_active" gorm:"not null"`
	LastGenerated *time.Time   `json:"last_generated"`
	NextScheduled *time.Time   `json:"next_scheduled"`
	CreatedAt     time.Time    `json:"created_at"`
	CreatedBy     string       `json:"created_by" gorm:"size:255;not null" validate:"required,max=255"`
}

func (Report) TableName() string { return "dashboard_reports" }

func (r *Report) ApplyDefaults() {
	r.Recipients = shared.JSON("[]")
	r.IsActive = true
}

// MarkGenerated stamps a generation at now and advances the schedule.
func (r *Report) MarkGenerated(now time.Time) {
	r.LastGenerated = &now
	base := now
	if r.NextScheduled != nil && r.NextScheduled.After(now) {
		base = *r.NextScheduled
	}
	next := r.Frequency.Next(base)
	r.NextScheduled = &next
}

// MetricType groups system metrics
type MetricType string

const (
	MetricRevenue     MetricType = "REVENUE"
	MetricExpenses    MetricType = "EXPENSES"
	MetricUsers       MetricType = "USERS"
	MetricOrders      MetricType = "ORDERS"
	MetricProducts    MetricType = "PRODUCTS"
	MetricInventory   MetricType = "INVENTORY"
	MetricPerformance MetricType = "PERFORMANCE"
	MetricCustom      MetricType = "CUSTOM"
)

// MetricTypes lists every metric type in display order.
var MetricTypes = []MetricType{
	MetricRevenue, MetricExpenses, MetricUsers, MetricOrders,
	MetricProducts, MetricInventory, MetricPerformance, MetricCustom,
}

// Metric is a system-wide measurement identified by a unique key.
type Metric struct {
	shared.BaseEntity
	MetricType  MetricType      `json:"metric_type" gorm:"size:50;not null;index:idx_metric_type_ts,priority:1" validate:"required,oneof=REVENUE EXPENSES USERS ORDERS PRODUCTS INVENTORY PERFORMANCE CUSTOM"`
	MetricKey   string          `json:"metric_key" gorm:"size:255;not null;uniqueIndex" validate:"required,max=255"`
	MetricName  string          `json:"metric_name" gorm:"size:255;not null" validate:"required,max=255"`
	MetricValue decimal.Decimal `json:"metric_value" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	MetricUnit  string          `json:"metric_unit" gorm:"size:50" validate:"max=50"`
	Timestamp   time.Time       `json:"timestamp" gorm:"autoCreateTime;index:idx_metric_type_ts,priority:2"`
	PeriodStart *time.Time      `json:"period_start"`
	PeriodEnd   *time.Time      `json:"period_end"`
	Tags        shared.JSON     `json:"tags"`
	Metadata    shared.JSON     `json:"metadata"`
}

func (Metric) TableName() string { return "dashboard_metrics" }

func (m *Metric) ApplyDefaults() {
	m.Tags = shared.JSON("[]")
	m.Metadata = shared.JSON("{}")
}
