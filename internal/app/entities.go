package app

import (
	"fmt"

	accountingapp "github.com/erp/erpapi/internal/application/accounting"
	authapp "github.com/erp/erpapi/internal/application/authentication"
	cashapp "github.com/erp/erpapi/internal/application/cashmanagement"
	crmapp "github.com/erp/erpapi/internal/application/crm"
	dashboardapp "github.com/erp/erpapi/internal/application/dashboard"
	expenseapp "github.com/erp/erpapi/internal/application/expense"
	hrapp "github.com/erp/erpapi/internal/application/hr"
	inventoryapp "github.com/erp/erpapi/internal/application/inventory"
	maintenanceapp "github.com/erp/erpapi/internal/application/maintenance"
	manufacturingapp "github.com/erp/erpapi/internal/application/manufacturing"
	payableapp "github.com/erp/erpapi/internal/application/payable"
	procurementapp "github.com/erp/erpapi/internal/application/procurement"
	productionapp "github.com/erp/erpapi/internal/application/production"
	projectapp "github.com/erp/erpapi/internal/application/project"
	qualityapp "github.com/erp/erpapi/internal/application/quality"
	receivableapp "github.com/erp/erpapi/internal/application/receivable"
	"github.com/erp/erpapi/internal/application/resource"
	salesapp "github.com/erp/erpapi/internal/application/sales"
	sitemaintenanceapp "github.com/erp/erpapi/internal/application/sitemaintenance"
	sitesapp "github.com/erp/erpapi/internal/application/sites"
	"github.com/erp/erpapi/internal/domain/accounting"
	"github.com/erp/erpapi/internal/domain/authentication"
	"github.com/erp/erpapi/internal/domain/cashmanagement"
	"github.com/erp/erpapi/internal/domain/crm"
	"github.com/erp/erpapi/internal/domain/dashboard"
	"github.com/erp/erpapi/internal/domain/expense"
	"github.com/erp/erpapi/internal/domain/hr"
	"github.com/erp/erpapi/internal/domain/inventory"
	"github.com/erp/erpapi/internal/domain/maintenance"
	"github.com/erp/erpapi/internal/domain/manufacturing"
	"github.com/erp/erpapi/internal/domain/payable"
	"github.com/erp/erpapi/internal/domain/procurement"
	"github.com/erp/erpapi/internal/domain/production"
	"github.com/erp/erpapi/internal/domain/project"
	"github.com/erp/erpapi/internal/domain/quality"
	"github.com/erp/erpapi/internal/domain/receivable"
	"github.com/erp/erpapi/internal/domain/sales"
	"github.com/erp/erpapi/internal/domain/sitemaintenance"
	"github.com/erp/erpapi/internal/domain/sites"
	"github.com/erp/erpapi/internal/infrastructure/persistence"
	"github.com/erp/erpapi/internal/interfaces/http/handler"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// entry binds a resource definition to the entity type it serves.
type entry struct {
	def   resource.Definition
	model any
	mount func(r *registry) error
}

func entity[T any](def resource.Definition) entry {
	return entry{
		def:   def,
		model: new(T),
		mount: func(r *registry) error { return register[T](r, def) },
	}
}

// entities lists every resource of the API, grouped by module.
var entities = []entry{
	entity[authentication.Group](authapp.Groups),
	entity[authentication.User](authapp.Users),

	entity[accounting.Vendor](accountingapp.Vendors),
	entity[accounting.VendorInvoice](accountingapp.VendorInvoices),
	entity[accounting.VendorPayment](accountingapp.VendorPayments),
	entity[accounting.AuditLog](accountingapp.AuditLogs),
	entity[accounting.LedgerEntry](accountingapp.LedgerEntries),
	entity[accounting.Currency](accountingapp.Currencies),
	entity[accounting.TaxRate](accountingapp.TaxRates),
	entity[accounting.Customer](accountingapp.Customers),
	entity[accounting.FixedAsset](accountingapp.FixedAssets),
	entity[accounting.BankProfile](accountingapp.BankProfiles),
	entity[accounting.BankStatement](accountingapp.BankStatements),
	entity[accounting.ReconciliationEntry](accountingapp.ReconciliationEntries),

	entity[cashmanagement.TreasuryAccount](cashapp.TreasuryAccounts),
	entity[cashmanagement.PaymentSchedule](cashapp.PaymentSchedules),

	entity[crm.Lead](crmapp.Leads),
	entity[crm.Opportunity](crmapp.Opportunities),
	entity[crm.Contact](crmapp.Contacts),
	entity[crm.Contract](crmapp.Contracts),
	entity[crm.Campaign](crmapp.Campaigns),

	entity[dashboard.Dashboard](dashboardapp.Dashboards),
	entity[dashboard.Widget](dashboardapp.Widgets),
	entity[dashboard.KPI](dashboardapp.KPIs),
	entity[dashboard.ChartData](dashboardapp.ChartData),
	entity[dashboard.Alert](dashboardapp.Alerts),
	entity[dashboard.Report](dashboardapp.Reports),
	entity[dashboard.Metric](dashboardapp.Metrics),
	entity[dashboard.Activity](dashboardapp.Activities),

	entity[expense.Report](expenseapp.Reports),
	entity[expense.Expense](expenseapp.Expenses),
	entity[expense.Reimbursement](expenseapp.Reimbursements),

	entity[hr.Employee](hrapp.Employees),
	entity[hr.Attendance](hrapp.Attendance),
	entity[hr.Leave](hrapp.Leaves),

	entity[inventory.Category](inventoryapp.Categories),
	entity[inventory.Product](inventoryapp.Products),
	entity[inventory.StockMovement](inventoryapp.StockMovements),

	entity[maintenance.Equipment](maintenanceapp.Equipment),
	entity[maintenance.Request](maintenanceapp.Requests),

	entity[manufacturing.WorkCenter](manufacturingapp.WorkCenters),
	entity[manufacturing.BillOfMaterial](manufacturingapp.BillsOfMaterial),
	entity[manufacturing.ProductionOrder](manufacturingapp.ProductionOrders),

	entity[payable.VendorBill](payableapp.VendorBills),
	entity[payable.VendorBillLineItem](payableapp.VendorBillLineItems),
	entity[payable.VendorPayment](payableapp.VendorPayments),
	entity[payable.APReconciliation](payableapp.Reconciliations),
	entity[payable.APDiscount](payableapp.Discounts),
	entity[payable.APSettings](payableapp.Settings),
	entity[payable.APAging](payableapp.Agings),

	entity[procurement.Vendor](procurementapp.Vendors),
	entity[procurement.PurchaseOrder](procurementapp.PurchaseOrders),
	entity[procurement.POLineItem](procurementapp.POLineItems),
	entity[procurement.GoodsReceipt](procurementapp.GoodsReceipts),
	entity[procurement.RequestForQuotation](procurementapp.RFQs),
	entity[procurement.VendorQuotation](procurementapp.VendorQuotations),
	entity[procurement.ThreeWayMatching](procurementapp.ThreeWayMatchings),
	entity[procurement.Settings](procurementapp.Settings),

	entity[production.WorkOrder](productionapp.WorkOrders),

	entity[project.Project](projectapp.Projects),
	entity[project.Task](projectapp.Tasks),
	entity[project.TimeEntry](projectapp.TimeEntries),

	entity[quality.Check](qualityapp.Checks),

	entity[receivable.CustomerInvoice](receivableapp.CustomerInvoices),
	entity[receivable.InvoiceLineItem](receivableapp.InvoiceLineItems),
	entity[receivable.CustomerPayment](receivableapp.CustomerPayments),
	entity[receivable.ARReconciliation](receivableapp.Reconciliations),
	entity[receivable.ARDiscount](receivableapp.Discounts),
	entity[receivable.ARSettings](receivableapp.Settings),
	entity[receivable.ARAging](receivableapp.Agings),

	entity[sales.Customer](salesapp.Customers),

	entity[sitemaintenance.Asset](sitemaintenanceapp.Assets),
	entity[sitemaintenance.Task](sitemaintenanceapp.Tasks),
	entity[sitemaintenance.WorkOrder](sitemaintenanceapp.WorkOrders),

	entity[sites.Site](sitesapp.Sites),
}

// Models returns a zero value of every persisted entity, for AutoMigrate.
func Models() []any {
	return lo.Map(entities, func(e entry, _ int) any { return e.model })
}

// registry mounts entities: one store, service and resource handler each.
type registry struct {
	db       *gorm.DB
	catalog  *resource.Catalog
	deps     resource.Deps
	log      *zap.Logger
	services map[string]any
	handlers []*handler.ResourceHandler
}

func newRegistry(db *gorm.DB, log *zap.Logger) *registry {
	return &registry{
		db:       db,
		catalog:  resource.NewCatalog(),
		log:      log,
		services: make(map[string]any, len(entities)),
	}
}

func (r *registry) mountAll() error {
	for _, e := range entities {
		if err := e.mount(r); err != nil {
			return err
		}
	}
	return nil
}

func register[T any](r *registry, def resource.Definition) error {
	store, err := persistence.NewStore[T](r.db, r.catalog)
	if err != nil {
		return fmt.Errorf("register %s: %w", def.Route(), err)
	}
	r.catalog.Add(store.Table(), def)

	svc := resource.NewService[T](def, store, r.deps)
	r.services[def.Route()] = svc
	r.handlers = append(r.handlers, handler.NewResourceHandler(svc.Endpoint(), r.log))
	return nil
}

// service returns the mounted service of def. It panics when def was not
// mounted with entity type T.
func service[T any](r *registry, def resource.Definition) *resource.Service[T] {
	return r.services[def.Route()].(*resource.Service[T])
}

// resourceHandler returns the handler mounted for def.
func (r *registry) resourceHandler(def resource.Definition) *handler.ResourceHandler {
	h, _ := lo.Find(r.handlers, func(h *handler.ResourceHandler) bool {
		return h.Endpoint().Definition().Route() == def.Route()
	})
	return h
}

func (r *registry) endpoints() []resource.Endpoint {
	return lo.Map(r.handlers, func(h *handler.ResourceHandler, _ int) resource.Endpoint { return h.Endpoint() })
}
