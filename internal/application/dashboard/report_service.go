package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/dashboard"
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportStorage stores rendered reports.
type ReportStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}

// GenerateResult describes a generated report.
type GenerateResult struct {
	Status        string                 `json:"status"`
	LastGenerated time.Time              `json:"last_generated"`
	Format        dashboard.ReportFormat `json:"format"`
	StorageKey    string                 `json:"storage_key"`
	DownloadURL   string                 `json:"download_url"`
}

// ReportService renders dashboard reports on demand.
type ReportService struct {
	reports    *resource.Service[dashboard.Report]
	dashboards *DashboardService
	kpis       shared.Repository[dashboard.KPI]
	storage    ReportStorage
	now        func() time.Time
	logger     *zap.Logger
}

// ReportServiceOption configures a ReportService.
type ReportServiceOption func(*ReportService)

// WithClock replaces the time source.
func WithClock(now func() time.Time) ReportServiceOption {
	return func(s *ReportService) {
		s.now = now
	}
}

// WithReportLogger sets the logger.
func WithReportLogger(logger *zap.Logger) ReportServiceOption {
	return func(s *ReportService) {
		s.logger = logger
	}
}

// NewReportService creates a ReportService.
func NewReportService(
	reports *resource.Service[dashboard.Report],
	dashboards *DashboardService,
	kpis shared.Repository[dashboard.KPI],
	storage ReportStorage,
	opts ...ReportServiceOption,
) *ReportService {
	s := &ReportService{
		reports:    reports,
		dashboards: dashboards,
		kpis:       kpis,
		storage:    storage,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate renders the report's dashboard in the report format, stores the
// output and advances the report schedule.
func (s *ReportService) Generate(ctx context.Context, id uuid.UUID) (*GenerateResult, error) {
	report, err := s.reports.Repository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx, report)
	if err != nil {
		return nil, err
	}
	out, err := render(report.Format, snap)
	if err != nil {
		return nil, fmt.Errorf("render report %s: %w", report.ID, err)
	}

	key := fmt.Sprintf("reports/%s/%s.%s", report.ID, snap.GeneratedAt.Format("20060102T150405Z"), out.extension)
	if err := s.storage.Upload(ctx, key, out.data, out.contentType); err != nil {
		return nil, fmt.Errorf("store report %s: %w", report.ID, err)
	}

	updated, err := s.reports.Modify(ctx, id, func(r *dashboard.Report) error {
		r.MarkGenerated(snap.GeneratedAt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	url, _, err := s.storage.GenerateDownloadURL(ctx, key, 0)
	if err != nil {
		return nil, fmt.Errorf("report download url: %w", err)
	}

	s.logger.Info("Report generated",
		zap.String("report_id", report.ID.String()),
		zap.String("format", string(report.Format)),
		zap.String("storage_key", key),
		zap.Int("bytes", len(out.data)),
	)
	return &GenerateResult{
		Status:        "Report generated successfully",
		LastGenerated: *updated.LastGenerated,
		Format:        updated.Format,
		StorageKey:    key,
		DownloadURL:   url,
	}, nil
}

func (s *ReportService) snapshot(ctx context.Context, report *dashboard.Report) (*Snapshot, error) {
	detail, err := s.dashboards.Detail(ctx, report.DashboardID)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{
		Report:      report.Name,
		GeneratedAt: s.now().UTC().Truncate(time.Second),
		Dashboard:   detail,
		KPIs:        []dashboard.KPI{},
	}
	for _, w := range detail.Widgets {
		kpis, err := s.kpis.FindAll(ctx, shared.Where(map[string]any{"widget": w.ID}))
		if err != nil {
			return nil, err
		}
		snap.KPIs = append(snap.KPIs, kpis...)
	}
	return snap, nil
}
