// Package app is the composition root of the API: it mounts every resource,
// wires the module services and builds the HTTP engine.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	accountingapp "github.com/erp/erpapi/internal/application/accounting"
	dashboardapp "github.com/erp/erpapi/internal/application/dashboard"
	hrapp "github.com/erp/erpapi/internal/application/hr"
	payableapp "github.com/erp/erpapi/internal/application/payable"
	receivableapp "github.com/erp/erpapi/internal/application/receivable"
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/accounting"
	"github.com/erp/erpapi/internal/domain/dashboard"
	"github.com/erp/erpapi/internal/domain/hr"
	"github.com/erp/erpapi/internal/domain/payable"
	"github.com/erp/erpapi/internal/domain/receivable"
	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/erp/erpapi/internal/infrastructure/persistence"
	"github.com/erp/erpapi/internal/infrastructure/telemetry"
	"github.com/erp/erpapi/internal/interfaces/http/handler"
	"github.com/erp/erpapi/internal/interfaces/http/openapi"
	"github.com/erp/erpapi/internal/interfaces/http/router"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options are the infrastructure the application is built on.
type Options struct {
	Config  *config.Config
	DB      *gorm.DB
	Logger  *zap.Logger
	Meter   *telemetry.MeterProvider // nil disables resource and HTTP metrics
	Storage dashboardapp.ReportStorage
}

// App is the assembled API.
type App struct {
	router  *router.Router
	catalog *resource.Catalog
	doc     *openapi.Doc
}

// New mounts every resource and returns the ready to serve application.
func New(opts Options) (*App, error) {
	cfg, db := opts.Config, opts.DB
	if cfg == nil || db == nil || opts.Storage == nil {
		return nil, errors.New("app: config, database and report storage are required")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("Database schema migrated", zap.Int("models", len(entities)))
	}

	reg := newRegistry(db, log)
	auditLogs, err := persistence.NewStore[accounting.AuditLog](db, reg.catalog)
	if err != nil {
		return nil, err
	}
	reg.deps = resource.Deps{
		Validator:  resource.NewValidator(),
		References: persistence.NewReferences(db),
		Auditor:    accountingapp.NewAuditTrail(auditLogs),
		Pagination: resource.Pagination{
			DefaultPageSize: cfg.Pagination.DefaultPageSize,
			MaxPageSize:     cfg.Pagination.MaxPageSize,
		},
		Logger: log.Named("resource"),
	}
	if opts.Meter != nil {
		observer, err := telemetry.NewResourceMetrics(opts.Meter)
		if err != nil {
			return nil, fmt.Errorf("resource metrics: %w", err)
		}
		reg.deps.Observer = observer
	}

	if err := reg.mountAll(); err != nil {
		return nil, err
	}

	dashboards := dashboardapp.NewDashboardService(
		service[dashboard.Dashboard](reg, dashboardapp.Dashboards),
		service[dashboard.Widget](reg, dashboardapp.Widgets),
		service[dashboard.KPI](reg, dashboardapp.KPIs),
		service[dashboard.Alert](reg, dashboardapp.Alerts),
		service[dashboard.Activity](reg, dashboardapp.Activities).Repository(),
		log.Named("dashboard"),
	)
	metrics := dashboardapp.NewMetricService(service[dashboard.Metric](reg, dashboardapp.Metrics).Repository())
	reports := dashboardapp.NewReportService(
		service[dashboard.Report](reg, dashboardapp.Reports),
		dashboards,
		service[dashboard.KPI](reg, dashboardapp.KPIs).Repository(),
		opts.Storage,
		dashboardapp.WithReportLogger(log.Named("reports")),
	)
	dashboardHandler := handler.NewDashboardHandler(dashboards, metrics, reports, log)
	reg.resourceHandler(dashboardapp.Dashboards).WithRetrieve(dashboardHandler.Detail)

	leaves := hrapp.NewLeaveService(service[hr.Leave](reg, hrapp.Leaves))
	bills := payableapp.NewSummaryService(
		service[payable.VendorBill](reg, payableapp.VendorBills).Repository(),
		service[payable.VendorBillLineItem](reg, payableapp.VendorBillLineItems).Repository(),
		service[payable.VendorPayment](reg, payableapp.VendorPayments).Repository(),
	)
	invoices := receivableapp.NewSummaryService(
		service[receivable.CustomerInvoice](reg, receivableapp.CustomerInvoices).Repository(),
		service[receivable.InvoiceLineItem](reg, receivableapp.InvoiceLineItems).Repository(),
		service[receivable.CustomerPayment](reg, receivableapp.CustomerPayments).Repository(),
	)

	doc, err := openapi.Build(openapi.Info{
		Title:       cfg.App.Name,
		Description: "Generic CRUD resources of the ERP modules and their actions.",
		Version:     handler.Version,
		BasePath:    "/api",
	}, reg.endpoints(), actions)
	if err != nil {
		return nil, fmt.Errorf("build openapi document: %w", err)
	}
	doc.Register()

	engine, err := router.NewEngine(router.EngineOptions{
		Config:    cfg,
		Logger:    log,
		Meter:     opts.Meter,
		Tracing:   cfg.Telemetry.Enabled,
		Profiling: cfg.Profiling.Enabled,
	})
	if err != nil {
		return nil, err
	}

	system := handler.NewSystemHandler(cfg.App.Name, string(cfg.Environment), ping(db), log)
	r := router.NewRouter(engine,
		router.WithHealth(system.Health),
		router.WithStatic(staticReports(cfg.Storage)),
	)
	r.Register(system)
	for _, h := range reg.handlers {
		r.Register(h)
	}
	r.Register(
		dashboardHandler,
		handler.NewLeaveHandler(leaves, log),
		handler.NewSummaryHandler(bills, invoices, log),
	)
	r.Setup()

	log.Info("API assembled", zap.Int("resources", len(reg.handlers)))
	return &App{router: r, catalog: reg.catalog, doc: doc}, nil
}

// Handler returns the HTTP handler serving the API.
func (a *App) Handler() http.Handler {
	return a.router.Engine()
}

// Catalog returns the registered resource definitions.
func (a *App) Catalog() *resource.Catalog {
	return a.catalog
}

// Doc returns the OpenAPI document of the API.
func (a *App) Doc() *openapi.Doc {
	return a.doc
}

func ping(db *gorm.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// staticReports returns where locally stored reports are served from.
func staticReports(cfg config.StorageConfig) (string, string) {
	if cfg.Driver != "" && cfg.Driver != "local" {
		return "", ""
	}
	u, err := url.Parse(cfg.PublicBaseURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "", ""
	}
	return u.Path, cfg.LocalPath
}
