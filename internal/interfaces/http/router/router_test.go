package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/erp/erpapi/internal/interfaces/http/openapi"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type thingsRoutes struct{}

func (thingsRoutes) Register(rg *gin.RouterGroup) {
	rg.GET("/things/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"count": 0}) })
	rg.POST("/things/", func(c *gin.Context) { c.Status(http.StatusCreated) })
}

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Name: "erp-api", AllowedHosts: []string{"*"}},
		CORS: config.CORSConfig{AllowOrigins: []string{"*"}},
		HTTP: config.HTTPConfig{MaxBodySize: 1 << 20},
	}
}

func newRouter(t *testing.T, cfg *config.Config, opts ...RouterOption) *gin.Engine {
	t.Helper()
	engine, err := NewEngine(EngineOptions{Config: cfg})
	require.NoError(t, err)
	r := NewRouter(engine, opts...)
	r.Register(thingsRoutes{})
	r.Setup()
	return r.Engine()
}

func serve(engine *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRouter_MountsUnderAPI(t *testing.T) {
	engine := newRouter(t, testConfig())

	w := serve(engine, http.MethodGet, "/api/things/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	engine := newRouter(t, testConfig())

	w := serve(engine, http.MethodGet, "/api/nowhere/")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	engine := newRouter(t, testConfig())

	w := serve(engine, http.MethodDelete, "/api/things/")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"detail":"Method \"DELETE\" not allowed."}`, w.Body.String())
}

func TestRouter_RedirectsMissingTrailingSlash(t *testing.T) {
	engine := newRouter(t, testConfig())

	w := serve(engine, http.MethodGet, "/api/things")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/api/things/", w.Header().Get("Location"))
}

func TestRouter_Health(t *testing.T) {
	cfg := testConfig()
	cfg.Security.SSLRedirect = true
	engine := newRouter(t, cfg, WithHealth(func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "healthy"}) }))

	w := serve(engine, http.MethodGet, HealthPath)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, "/api/things/")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "https://example.com/api/things/", w.Header().Get("Location"))
}

func TestRouter_RejectsUnknownHost(t *testing.T) {
	cfg := testConfig()
	cfg.App.AllowedHosts = []string{"erp.example.org"}
	engine := newRouter(t, cfg)

	w := serve(engine, http.MethodGet, "/api/things/")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ServesStaticReports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "summary.csv"), []byte("name,value\n"), 0o644))
	engine := newRouter(t, testConfig(), WithStatic("/media/reports", dir))

	w := serve(engine, http.MethodGet, "/media/reports/summary.csv")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "name,value\n", w.Body.String())
}

func TestRouter_Swagger(t *testing.T) {
	doc, err := openapi.Build(openapi.Info{Title: "ERP API", Version: "1.0.0", BasePath: "/api"}, nil, nil)
	require.NoError(t, err)
	doc.Register()

	cfg := testConfig()
	engine := newRouter(t, cfg)
	w := serve(engine, http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusNotFound, w.Code)

	cfg.Swagger.Enabled = true
	engine = newRouter(t, cfg)
	w = serve(engine, http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ERP API")
}
