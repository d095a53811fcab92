package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds database tracing settings.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool // include query variables; development only
	SlowQueryThresh time.Duration
	DBSystem        string
}

type queryStartKey struct{}

// RegisterDBTracing installs otelgorm on db, plus callbacks that annotate
// each span with the table, affected rows, errors and slow-query markers.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBSystem)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	a := &spanAnnotator{threshold: cfg.SlowQueryThresh}
	cb := db.Callback()
	errs := []error{
		cb.Create().Before("gorm:create").Register("otel_timing:before_create", a.before),
		cb.Query().Before("gorm:query").Register("otel_timing:before_query", a.before),
		cb.Update().Before("gorm:update").Register("otel_timing:before_update", a.before),
		cb.Delete().Before("gorm:delete").Register("otel_timing:before_delete", a.before),
		cb.Row().Before("gorm:row").Register("otel_timing:before_row", a.before),
		cb.Raw().Before("gorm:raw").Register("otel_timing:before_raw", a.before),
		cb.Create().After("gorm:create").Register("otel_slow_query:create", a.after),
		cb.Query().After("gorm:query").Register("otel_slow_query:query", a.after),
		cb.Update().After("gorm:update").Register("otel_slow_query:update", a.after),
		cb.Delete().After("gorm:delete").Register("otel_slow_query:delete", a.after),
		cb.Row().After("gorm:row").Register("otel_slow_query:row", a.after),
		cb.Raw().After("gorm:raw").Register("otel_slow_query:raw", a.after),
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
	)
	return nil
}

type spanAnnotator struct {
	threshold time.Duration
}

func (a *spanAnnotator) before(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

func (a *spanAnnotator) after(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}
	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok && a.threshold > 0 {
		if elapsed := time.Since(start); elapsed > a.threshold {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
