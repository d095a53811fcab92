package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockEndpoint struct {
	mock.Mock
}

func (m *MockEndpoint) Definition() resource.Definition {
	return resource.Definition{Module: "accounting", Path: "vendors", Name: "Vendor"}
}

func (m *MockEndpoint) Meta() *resource.Meta { return nil }

func (m *MockEndpoint) Model() any { return nil }

func (m *MockEndpoint) List(ctx context.Context, params url.Values) (*resource.Page[any], error) {
	args := m.Called(ctx, params)
	page, _ := args.Get(0).(*resource.Page[any])
	return page, args.Error(1)
}

func (m *MockEndpoint) Get(ctx context.Context, id uuid.UUID) (any, error) {
	args := m.Called(ctx, id)
	return args.Get(0), args.Error(1)
}

func (m *MockEndpoint) Create(ctx context.Context, body []byte) (any, error) {
	args := m.Called(ctx, string(body))
	return args.Get(0), args.Error(1)
}

func (m *MockEndpoint) Update(ctx context.Context, id uuid.UUID, body []byte, partial bool) (any, error) {
	args := m.Called(ctx, id, string(body), partial)
	return args.Get(0), args.Error(1)
}

func (m *MockEndpoint) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func setupResource(t *testing.T) (*gin.Engine, *MockEndpoint, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	ep := new(MockEndpoint)
	r := gin.New()
	NewResourceHandler(ep, zap.New(core)).Register(r.Group("/api"))
	return r, ep, logs
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResourceHandler_List(t *testing.T) {
	r, ep, _ := setupResource(t)
	ep.On("List", mock.Anything, url.Values{"status": {"ACTIVE"}, "page": {"2"}}).Return(&resource.Page[any]{
		Count: 120, Page: 2, PageSize: 50, NumPages: 3,
		Results: []any{map[string]string{"vendor_code": "V051"}},
	}, nil)

	w := do(r, http.MethodGet, "http://erp.local/api/accounting/vendors/?status=ACTIVE&page=2", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"count": 120,
		"next": "http://erp.local/api/accounting/vendors/?page=3&status=ACTIVE",
		"previous": "http://erp.local/api/accounting/vendors/?status=ACTIVE",
		"results": [{"vendor_code": "V051"}]
	}`, w.Body.String())
}

func TestResourceHandler_ListInvalidPage(t *testing.T) {
	r, ep, _ := setupResource(t)
	ep.On("List", mock.Anything, mock.Anything).Return(nil, shared.ErrInvalidPage)

	w := do(r, http.MethodGet, "/api/accounting/vendors/?page=9", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid page."}`, w.Body.String())
}

func TestResourceHandler_Get(t *testing.T) {
	r, ep, _ := setupResource(t)
	id := uuid.New()
	ep.On("Get", mock.Anything, id).Return(map[string]string{"vendor_code": "V001"}, nil)
	ep.On("Get", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	w := do(r, http.MethodGet, "/api/accounting/vendors/"+id.String()+"/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"vendor_code":"V001"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/accounting/vendors/"+uuid.NewString()+"/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/accounting/vendors/not-a-uuid/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())
}

func TestResourceHandler_Create(t *testing.T) {
	r, ep, _ := setupResource(t)
	ep.On("Create", mock.Anything, `{"vendor_code":"V001"}`).Return(map[string]string{"vendor_code": "V001"}, nil).Once()

	w := do(r, http.MethodPost, "/api/accounting/vendors/", `{"vendor_code":"V001"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	verr := shared.NewValidationError()
	verr.Add("vendor_code", "vendor with this vendor code already exists.")
	ep.On("Create", mock.Anything, `{"vendor_code":"V001"}`).Return(nil, verr).Once()

	w = do(r, http.MethodPost, "/api/accounting/vendors/", `{"vendor_code":"V001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"vendor_code":["vendor with this vendor code already exists."]}`, w.Body.String())
}

func TestResourceHandler_Update(t *testing.T) {
	r, ep, _ := setupResource(t)
	id := uuid.New()
	ep.On("Update", mock.Anything, id, `{"vendor_name":"Acme"}`, false).Return(map[string]string{"vendor_name": "Acme"}, nil)
	ep.On("Update", mock.Anything, id, `{"email":"a@b.co"}`, true).Return(map[string]string{"email": "a@b.co"}, nil)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/api/accounting/vendors/"+id.String()+"/", `{"vendor_name":"Acme"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPatch, "/api/accounting/vendors/"+id.String()+"/", `{"email":"a@b.co"}`).Code)
	ep.AssertExpectations(t)
}

func TestResourceHandler_Delete(t *testing.T) {
	r, ep, _ := setupResource(t)
	ok, protected, appendOnly := uuid.New(), uuid.New(), uuid.New()
	ep.On("Delete", mock.Anything, ok).Return(nil)
	ep.On("Delete", mock.Anything, protected).Return(shared.NewConflictError(
		"Cannot delete some instances of model 'Vendor' because they are referenced through protected foreign keys: 'VendorInvoice.vendor'."))
	ep.On("Delete", mock.Anything, appendOnly).Return(shared.NewMethodNotAllowedError(http.MethodDelete))

	w := do(r, http.MethodDelete, "/api/accounting/vendors/"+ok.String()+"/", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodDelete, "/api/accounting/vendors/"+protected.String()+"/", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "protected foreign keys")

	w = do(r, http.MethodDelete, "/api/accounting/vendors/"+appendOnly.String()+"/", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"detail":"Method \"DELETE\" not allowed."}`, w.Body.String())
}

func TestResourceHandler_InternalErrorIsLogged(t *testing.T) {
	r, ep, logs := setupResource(t)
	ep.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	w := do(r, http.MethodGet, "/api/accounting/vendors/", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"A server error occurred."}`, w.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Request failed", logs.All()[0].Message)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestResourceHandler_WithRetrieve(t *testing.T) {
	ep := new(MockEndpoint)
	r := gin.New()
	NewResourceHandler(ep, zap.NewNop()).
		WithRetrieve(func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"nested": true}) }).
		Register(r.Group("/api"))

	w := do(r, http.MethodGet, "/api/accounting/vendors/"+uuid.NewString()+"/", "")
	assert.JSONEq(t, `{"nested":true}`, w.Body.String())
	ep.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestRequestURL(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "http://erp.local:8000/api/x/?a=1", nil)
	assert.Equal(t, "http://erp.local:8000/api/x/?a=1", requestURL(c).String())

	c.Request.Header.Set("X-Forwarded-Proto", "HTTPS, http")
	assert.Equal(t, "https://erp.local:8000/api/x/?a=1", requestURL(c).String())
}
