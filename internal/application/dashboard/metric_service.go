package dashboard

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/erp/erpapi/internal/domain/dashboard"
	"github.com/erp/erpapi/internal/domain/shared"
)

const (
	latestPerType = 10
	latestOverall = 20
)

// MetricSummary is the latest reading of one metric type.
type MetricSummary struct {
	MetricName  string    `json:"metric_name"`
	MetricValue string    `json:"metric_value"`
	MetricUnit  string    `json:"metric_unit"`
	Timestamp   time.Time `json:"timestamp"`
}

// MetricService answers the metric read actions.
type MetricService struct {
	metrics shared.Repository[dashboard.Metric]
}

// NewMetricService creates a MetricService.
func NewMetricService(metrics shared.Repository[dashboard.Metric]) *MetricService {
	return &MetricService{metrics: metrics}
}

var newestFirst = []shared.Order{{Field: "timestamp", Desc: true}, {Field: "id"}}

// Latest returns the newest metrics of metricType, or of every type when
// metricType is empty.
func (s *MetricService) Latest(ctx context.Context, metricType string) ([]dashboard.Metric, error) {
	q := shared.Query{Order: newestFirst, Limit: latestOverall}
	if metricType != "" {
		if !slices.Contains(dashboard.MetricTypes, dashboard.MetricType(metricType)) {
			return nil, shared.FieldError("metric_type", fmt.Sprintf("%q is not a valid choice.", metricType))
		}
		q.Conditions = []shared.Condition{{Field: "metric_type", Value: metricType}}
		q.Limit = latestPerType
	}
	rows, err := s.metrics.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return nonNil(rows), nil
}

// Summary returns the latest metric of each type that has any.
func (s *MetricService) Summary(ctx context.Context) (map[dashboard.MetricType]MetricSummary, error) {
	summary := make(map[dashboard.MetricType]MetricSummary, len(dashboard.MetricTypes))
	for _, t := range dashboard.MetricTypes {
		q := shared.Where(map[string]any{"metric_type": t})
		q.Order, q.Limit = newestFirst, 1
		rows, err := s.metrics.FindAll(ctx, q)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			continue
		}
		m := rows[0]
		summary[t] = MetricSummary{
			MetricName:  m.MetricName,
			MetricValue: m.MetricValue.StringFixed(2),
			MetricUnit:  m.MetricUnit,
			Timestamp:   m.Timestamp,
		}
	}
	return summary, nil
}
