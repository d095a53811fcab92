package telemetry

import (
	"context"

	"github.com/erp/erpapi/internal/application/resource"
)

// ResourceMetrics counts successful resource writes per module, resource and action.
type ResourceMetrics struct {
	writes *Counter
}

var _ resource.Observer = (*ResourceMetrics)(nil)

// NewResourceMetrics registers erp_resource_writes_total on mp.
func NewResourceMetrics(mp *MeterProvider) (*ResourceMetrics, error) {
	writes, err := NewCounter(
		mp.Meter("github.com/erp/erpapi/resource"),
		"erp_resource_writes_total",
		"Successful create, update and delete operations",
		"{write}",
	)
	if err != nil {
		return nil, err
	}
	return &ResourceMetrics{writes: writes}, nil
}

// ResourceWritten implements resource.Observer.
func (m *ResourceMetrics) ResourceWritten(ctx context.Context, def resource.Definition, action string) {
	m.writes.Inc(ctx,
		AttrModule.String(def.Module),
		AttrResource.String(def.Path),
		AttrAction.String(action),
	)
}
