package storage

import (
	"context"
	"fmt"

	dashboardapp "github.com/erp/erpapi/internal/application/dashboard"
	"github.com/erp/erpapi/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New returns the report store selected by cfg.Driver.
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (dashboardapp.ReportStorage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalObjectStorage(cfg.LocalPath, cfg.PublicBaseURL)
	case "s3":
		s, err := NewS3ObjectStorage(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
}
