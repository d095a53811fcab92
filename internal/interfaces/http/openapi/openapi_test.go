package openapi

import (
	"encoding/json"
	"testing"

	accountingapp "github.com/erp/erpapi/internal/application/accounting"
	payableapp "github.com/erp/erpapi/internal/application/payable"
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/accounting"
	"github.com/erp/erpapi/internal/domain/payable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag/v2"
)

func build(t *testing.T) map[string]any {
	t.Helper()
	eps := []resource.Endpoint{
		resource.NewService[accounting.VendorInvoice](accountingapp.VendorInvoices, nil, resource.Deps{}).Endpoint(),
		resource.NewService[accounting.AuditLog](accountingapp.AuditLogs, nil, resource.Deps{}).Endpoint(),
	}
	doc, err := Build(Info{Title: "ERP API", Version: "1.0.0", BasePath: "/api"}, eps, []Action{
		{Method: "POST", Path: "/hr/leaves/:id/approve/", Tag: "Hr", Summary: "Approve a leave", Body: true},
	})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.ReadDoc()), &out))
	return out
}

func TestBuild_Paths(t *testing.T) {
	doc := build(t)
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Equal(t, "/api", doc["basePath"])

	paths := doc["paths"].(map[string]any)
	collection := paths["/accounting/vendor-invoices/"].(map[string]any)
	assert.Contains(t, collection, "get")
	assert.Contains(t, collection, "post")

	detail := paths["/accounting/vendor-invoices/{id}/"].(map[string]any)
	for _, m := range []string{"get", "put", "patch", "delete"} {
		assert.Contains(t, detail, m)
	}

	auditDetail := paths["/accounting/audit-logs/{id}/"].(map[string]any)
	assert.Contains(t, auditDetail, "get")
	assert.NotContains(t, auditDetail, "delete", "append-only resources cannot be deleted")

	approve := paths["/hr/leaves/{id}/approve/"].(map[string]any)
	assert.Contains(t, approve, "post")
}

func TestBuild_Definitions(t *testing.T) {
	doc := build(t)
	invoice := doc["definitions"].(map[string]any)["VendorInvoice"].(map[string]any)
	props := invoice["properties"].(map[string]any)

	amount := props["amount"].(map[string]any)
	assert.Equal(t, "string", amount["type"])
	assert.Equal(t, "decimal", amount["format"])

	status := props["status"].(map[string]any)
	assert.ElementsMatch(t, []any{"DRAFT", "RECEIVED", "APPROVED", "PAID", "CANCELLED"}, status["enum"])

	assert.Equal(t, "date", props["invoice_date"].(map[string]any)["format"])
	assert.Contains(t, invoice["required"], "invoice_number")
}

func TestBuild_QualifiesSharedNames(t *testing.T) {
	eps := []resource.Endpoint{
		resource.NewService[accounting.VendorPayment](accountingapp.VendorPayments, nil, resource.Deps{}).Endpoint(),
		resource.NewService[payable.VendorPayment](payableapp.VendorPayments, nil, resource.Deps{}).Endpoint(),
		resource.NewService[accounting.Vendor](accountingapp.Vendors, nil, resource.Deps{}).Endpoint(),
	}
	doc, err := Build(Info{Title: "ERP API", BasePath: "/api"}, eps, nil)
	require.NoError(t, err)

	var out struct {
		Definitions map[string]any `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc.ReadDoc()), &out))
	assert.Contains(t, out.Definitions, "AccountingVendorPayment")
	assert.Contains(t, out.Definitions, "AccountsPayableVendorPayment")
	assert.Contains(t, out.Definitions, "Vendor")
}

func TestTag(t *testing.T) {
	assert.Equal(t, "Accounts Payable", Tag("accounts-payable"))
	assert.Equal(t, "Dashboard", Tag("dashboard"))
}

func TestSwaggerPath(t *testing.T) {
	assert.Equal(t, "/dashboard/kpis/{id}/update_value/", swaggerPath("/dashboard/kpis/:id/update_value/"))
}

func TestRegister(t *testing.T) {
	first := &Doc{raw: []byte(`{"v":1}`)}
	first.Register()
	second := &Doc{raw: []byte(`{"v":2}`)}
	second.Register()

	doc, err := swag.ReadDoc(InstanceName)
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, doc)
}
