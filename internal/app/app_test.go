package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/erp/erpapi/internal/infrastructure/persistence"
	"github.com/erp/erpapi/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type client struct {
	t *testing.T
	h http.Handler
}

func newClient(t *testing.T) client {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		App:         config.AppConfig{Name: "ERP API", AllowedHosts: []string{"*"}},
		Environment: config.Development,
		HTTP:        config.HTTPConfig{MaxBodySize: 1 << 20},
		Database: config.DatabaseConfig{
			Driver:      "sqlite",
			Name:        filepath.Join(dir, "erp.db"),
			AutoMigrate: true,
		},
		Pagination: config.PaginationConfig{DefaultPageSize: 50, MaxPageSize: 1000},
		Storage: config.StorageConfig{
			Driver:        "local",
			LocalPath:     filepath.Join(dir, "reports"),
			PublicBaseURL: "/media/reports",
		},
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reports, err := storage.NewLocalObjectStorage(cfg.Storage.LocalPath, cfg.Storage.PublicBaseURL)
	require.NoError(t, err)

	api, err := New(Options{Config: cfg, DB: db.DB, Storage: reports})
	require.NoError(t, err)
	return client{t: t, h: api.Handler()}
}

// at returns the client reporting to t, for use inside subtests.
func (c client) at(t *testing.T) client {
	return client{t: t, h: c.h}
}

func (c client) do(method, target string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, req)
	return w
}

// call performs the request, requires status and decodes the JSON object answered.
func (c client) call(method, target string, body any, status int) map[string]any {
	c.t.Helper()
	w := c.do(method, target, body)
	require.Equal(c.t, status, w.Code, w.Body.String())
	if w.Body.Len() == 0 {
		return nil
	}
	var out map[string]any
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (c client) create(target string, body map[string]any) string {
	c.t.Helper()
	out := c.call(http.MethodPost, target, body, http.StatusCreated)
	id, ok := out["id"].(string)
	require.True(c.t, ok, "created row carries an id")
	return id
}

func assertDecimal(t *testing.T, want string, got any) {
	t.Helper()
	s, ok := got.(string)
	require.True(t, ok, "decimal is rendered as a string, got %v", got)
	assert.True(t, decimal.RequireFromString(want).Equal(decimal.RequireFromString(s)), "want %s, got %s", want, s)
}

func results(t *testing.T, page map[string]any) []any {
	t.Helper()
	rows, ok := page["results"].([]any)
	require.True(t, ok)
	return rows
}

func TestApp_VendorInvoiceFlow(t *testing.T) {
	c := newClient(t)

	c.create("/api/accounting/vendors/", map[string]any{"vendor_code": "V001", "vendor_name": "Acme Supplies"})

	invoice := c.call(http.MethodPost, "/api/accounting/vendor-invoices/", map[string]any{
		"invoice_number": "INV-1",
		"vendor_name":    "Acme Supplies",
		"invoice_date":   "2024-01-10",
		"due_date":       "2024-02-10",
		"amount":         "1500.00",
	}, http.StatusCreated)
	assert.Equal(t, "DRAFT", invoice["status"])
	assertDecimal(t, "1500.00", invoice["amount"])

	page := c.call(http.MethodGet, "/api/accounting/vendor-invoices/?status=DRAFT", nil, http.StatusOK)
	assert.EqualValues(t, 1, page["count"])
	rows := results(t, page)
	require.Len(t, rows, 1)
	assert.Equal(t, "INV-1", rows[0].(map[string]any)["invoice_number"])

	page = c.call(http.MethodGet, "/api/accounting/vendor-invoices/?status=PAID", nil, http.StatusOK)
	assert.EqualValues(t, 0, page["count"])

	dup := c.call(http.MethodPost, "/api/accounting/vendors/",
		map[string]any{"vendor_code": "V001", "vendor_name": "Other"}, http.StatusBadRequest)
	require.Contains(t, dup, "vendor_code")
	assert.Contains(t, dup["vendor_code"].([]any)[0], "already exists")
}

func TestApp_ValidationErrors(t *testing.T) {
	c := newClient(t)

	out := c.call(http.MethodPost, "/api/accounting/vendor-invoices/", map[string]any{
		"invoice_number": "INV-2",
		"amount":         "12.345",
	}, http.StatusBadRequest)
	assert.Contains(t, out, "vendor_name")
	assert.Contains(t, out, "invoice_date")
	assert.Contains(t, out, "amount")

	c.call(http.MethodGet, "/api/accounting/vendor-invoices/?status=BOGUS", nil, http.StatusBadRequest)
}

func TestApp_AuditTrail(t *testing.T) {
	c := newClient(t)

	id := c.create("/api/accounting/vendors/", map[string]any{"vendor_code": "V010", "vendor_name": "Audited"})
	c.call(http.MethodPatch, "/api/accounting/vendors/"+id+"/", map[string]any{"vendor_name": "Renamed"}, http.StatusOK)

	page := c.call(http.MethodGet, "/api/accounting/audit-logs/?entity_type=Vendor", nil, http.StatusOK)
	assert.EqualValues(t, 2, page["count"])
	rows := results(t, page)
	actions := []any{rows[0].(map[string]any)["action"], rows[1].(map[string]any)["action"]}
	assert.ElementsMatch(t, []any{"CREATE", "UPDATE"}, actions)

	logID := rows[0].(map[string]any)["id"].(string)
	c.call(http.MethodGet, "/api/accounting/audit-logs/"+logID+"/", nil, http.StatusOK)
	c.call(http.MethodDelete, "/api/accounting/audit-logs/"+logID+"/", nil, http.StatusMethodNotAllowed)
}

func TestApp_Pagination(t *testing.T) {
	c := newClient(t)
	for _, code := range []string{"V1", "V2", "V3"} {
		c.create("/api/accounting/vendors/", map[string]any{"vendor_code": code, "vendor_name": "Vendor " + code})
	}

	page := c.call(http.MethodGet, "/api/accounting/vendors/?page_size=2", nil, http.StatusOK)
	assert.EqualValues(t, 3, page["count"])
	assert.Len(t, results(t, page), 2)
	assert.Contains(t, page["next"], "page=2")
	assert.Nil(t, page["previous"])

	page = c.call(http.MethodGet, "/api/accounting/vendors/?page_size=2&page=2", nil, http.StatusOK)
	assert.Len(t, results(t, page), 1)
	assert.Nil(t, page["next"])
	assert.NotNil(t, page["previous"])

	page = c.call(http.MethodGet, "/api/accounting/vendors/?search=V2", nil, http.StatusOK)
	assert.EqualValues(t, 1, page["count"])
}

func TestApp_ReferencePolicies(t *testing.T) {
	c := newClient(t)

	t.Run("protect", func(t *testing.T) {
		c := c.at(t)
		category := c.create("/api/inventory/categories/", map[string]any{"name": "Hardware"})
		c.create("/api/inventory/products/", map[string]any{
			"product_code": "P-1", "name": "Bolt", "category": category, "unit_price": "0.25",
		})

		out := c.call(http.MethodDelete, "/api/inventory/categories/"+category+"/", nil, http.StatusConflict)
		assert.Contains(t, out["detail"], "protected")
		c.call(http.MethodGet, "/api/inventory/categories/"+category+"/", nil, http.StatusOK)
	})

	t.Run("cascade", func(t *testing.T) {
		c := c.at(t)
		invoice := c.create("/api/accounting/vendor-invoices/", map[string]any{
			"invoice_number": "INV-C", "vendor_name": "Acme",
			"invoice_date": "2024-03-01", "due_date": "2024-04-01", "amount": "100.00",
		})
		payment := c.create("/api/accounting/vendor-payments/", map[string]any{
			"payment_number": "PAY-C", "vendor_invoice": invoice, "amount": "100.00",
			"payment_date": "2024-03-15", "payment_method": "BANK_TRANSFER", "status": "PENDING",
		})

		c.call(http.MethodDelete, "/api/accounting/vendor-invoices/"+invoice+"/", nil, http.StatusNoContent)
		c.call(http.MethodGet, "/api/accounting/vendor-payments/"+payment+"/", nil, http.StatusNotFound)
	})

	t.Run("set null", func(t *testing.T) {
		c := c.at(t)
		employee := func(n string) string {
			user := c.create("/api/authentication/users/", map[string]any{
				"username": "user" + n, "email": "user" + n + "@example.com",
				"first_name": "First", "last_name": "Last", "password": "secret-" + n,
			})
			return c.create("/api/hr/employees/", map[string]any{
				"employee_id": "E" + n, "user": user, "first_name": "First", "last_name": "Last",
				"email": "employee" + n + "@example.com", "phone": "555-000" + n, "gender": "O",
				"date_of_birth": "1990-01-01", "date_joined": "2020-01-01",
				"department": "IT", "position": "Engineer", "salary": "5000.00",
			})
		}
		staff, manager := employee("1"), employee("2")

		leave := c.create("/api/hr/leaves/", map[string]any{
			"employee": staff, "leave_type": "PL",
			"start_date": "2024-05-01", "end_date": "2024-05-03", "reason": "Holiday",
		})
		c.call(http.MethodPost, "/api/hr/leaves/"+leave+"/approve/", map[string]any{"approved_by": manager}, http.StatusOK)

		got := c.call(http.MethodGet, "/api/hr/leaves/"+leave+"/", nil, http.StatusOK)
		assert.Equal(t, "A", got["status"])
		assert.Equal(t, manager, got["approved_by"])

		c.call(http.MethodDelete, "/api/hr/employees/"+manager+"/", nil, http.StatusNoContent)
		got = c.call(http.MethodGet, "/api/hr/leaves/"+leave+"/", nil, http.StatusOK)
		assert.Nil(t, got["approved_by"])
		assert.Equal(t, "A", got["status"])
	})
}

func TestApp_BillSummary(t *testing.T) {
	c := newClient(t)

	bill := c.create("/api/accounts-payable/vendor-bills/", map[string]any{
		"bill_number": "B-1", "vendor_name": "Acme",
		"bill_date": "2024-06-01", "due_date": "2024-07-01", "bill_amount": "0.30",
	})
	for i := 0; i < 3; i++ {
		item := c.call(http.MethodPost, "/api/accounts-payable/vendor-bill-line-items/", map[string]any{
			"vendor_bill": bill, "description": "Washer", "quantity": 1, "unit_price": "0.10",
		}, http.StatusCreated)
		assertDecimal(t, "0.10", item["line_total"])
	}

	summary := c.call(http.MethodGet, "/api/accounts-payable/vendor-bills/"+bill+"/summary/", nil, http.StatusOK)
	assert.EqualValues(t, 3, summary["line_item_count"])
	assertDecimal(t, "0.30", summary["line_items_total"])
	assertDecimal(t, "0.30", summary["outstanding_amount"])
}

func TestApp_Dashboard(t *testing.T) {
	c := newClient(t)

	board := c.create("/api/dashboard/dashboards/", map[string]any{"name": "Operations", "is_default": true})
	widget := c.create("/api/dashboard/widgets/", map[string]any{
		"dashboard": board, "title": "Revenue", "widget_type": "CARD",
	})

	t.Run("kpi trend", func(t *testing.T) {
		c := c.at(t)
		kpi := c.create("/api/dashboard/kpis/", map[string]any{
			"widget": widget, "metric_name": "revenue", "current_value": "0.00",
		})

		out := c.call(http.MethodPost, "/api/dashboard/kpis/"+kpi+"/update_value/",
			map[string]any{"current_value": "50.00"}, http.StatusOK)
		assertDecimal(t, "50.00", out["current_value"])
		assertDecimal(t, "0", out["previous_value"])
		assert.Nil(t, out["trend"])
		assert.Nil(t, out["trend_percentage"])

		out = c.call(http.MethodPost, "/api/dashboard/kpis/"+kpi+"/update_value/",
			map[string]any{"current_value": "75.00"}, http.StatusOK)
		assert.Equal(t, "UP", out["trend"])
		assertDecimal(t, "50.00", out["trend_percentage"])
	})

	t.Run("alerts", func(t *testing.T) {
		c := c.at(t)
		for _, title := range []string{"Low stock", "Late invoice"} {
			c.create("/api/dashboard/alerts/", map[string]any{
				"dashboard": board, "alert_type": "WARNING", "title": title, "message": title,
			})
		}

		out := c.call(http.MethodPost, "/api/dashboard/alerts/mark_all_as_read/",
			map[string]any{"dashboard_id": board}, http.StatusOK)
		assert.EqualValues(t, 2, out["count"])

		page := c.call(http.MethodGet, "/api/dashboard/alerts/?is_read=false", nil, http.StatusOK)
		assert.EqualValues(t, 0, page["count"])
	})

	t.Run("detail and default", func(t *testing.T) {
		c := c.at(t)
		detail := c.call(http.MethodGet, "/api/dashboard/dashboards/"+board+"/", nil, http.StatusOK)
		assert.Equal(t, "Operations", detail["name"])
		assert.Len(t, detail["widgets"], 1)
		assert.Len(t, detail["alerts"], 2)

		def := c.call(http.MethodGet, "/api/dashboard/dashboards/default_dashboard/", nil, http.StatusOK)
		assert.Equal(t, board, def["id"])
	})

	t.Run("generate report", func(t *testing.T) {
		c := c.at(t)
		report := c.create("/api/dashboard/reports/", map[string]any{
			"dashboard": board, "name": "Weekly KPIs", "frequency": "WEEKLY",
			"format": "CSV", "created_by": "ops",
		})

		out := c.call(http.MethodPost, "/api/dashboard/reports/"+report+"/generate_report/", nil, http.StatusOK)
		assert.Equal(t, "CSV", out["format"])
		url, ok := out["download_url"].(string)
		require.True(t, ok)
		require.Contains(t, url, "/media/reports/")

		w := c.do(http.MethodGet, url, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "revenue")

		got := c.call(http.MethodGet, "/api/dashboard/reports/"+report+"/", nil, http.StatusOK)
		assert.NotNil(t, got["last_generated"])
	})
}

func TestApp_Routing(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/api/accounting/vendors", nil)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)

	w = c.do(http.MethodPatch, "/api/system/info/", map[string]any{})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"detail":"Method \"PATCH\" not allowed."}`, w.Body.String())

	c.call(http.MethodGet, "/api/accounting/vendors/00000000-0000-0000-0000-000000000000/", nil, http.StatusNotFound)

	info := c.call(http.MethodGet, "/api/system/info/", nil, http.StatusOK)
	assert.Equal(t, "ERP API", info["name"])

	w = c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
