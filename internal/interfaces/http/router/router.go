// Package router assembles the gin engine: the middleware chain, the error
// answers for unknown routes and methods, and the API route groups.
package router

import (
	"net/http"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/erp/erpapi/internal/infrastructure/logger"
	"github.com/erp/erpapi/internal/infrastructure/telemetry"
	"github.com/erp/erpapi/internal/interfaces/http/dto"
	"github.com/erp/erpapi/internal/interfaces/http/middleware"
	"github.com/erp/erpapi/internal/interfaces/http/openapi"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// HealthPath is served outside the API prefix and never redirected to https.
const HealthPath = "/health"

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	Register(rg *gin.RouterGroup)
}

// EngineOptions are the collaborators of the middleware chain.
type EngineOptions struct {
	Config    *config.Config
	Logger    *zap.Logger
	Meter     *telemetry.MeterProvider
	Tracing   bool
	Profiling bool
}

// NewEngine creates the gin engine with the full middleware chain installed
// and JSON answers for unknown routes and disallowed methods.
func NewEngine(opts EngineOptions) (*gin.Engine, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.RedirectTrailingSlash = true
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(
		middleware.Tracing(cfg.Telemetry.ServiceName, opts.Tracing),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Actor(),
		middleware.SpanAttributes(),
		middleware.SpanErrorMarker(),
	)
	if opts.Meter != nil {
		engine.Use(middleware.HTTPMetrics(opts.Meter, log))
	}
	engine.Use(
		middleware.Profiling(opts.Profiling),
		middleware.CORS(cfg.CORS),
		middleware.Secure(cfg.Security),
	)
	if cfg.Security.SSLRedirect {
		engine.Use(middleware.SSLRedirect(HealthPath))
	}
	engine.Use(
		middleware.AllowedHosts(cfg.App.AllowedHosts),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Detail{Detail: shared.ErrNotFound.Message})
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.Detail{Detail: shared.NewMethodNotAllowedError(c.Request.Method).Message})
	})

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(openapi.InstanceName)),
	)
	return engine, nil
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	prefix     string
	health     gin.HandlerFunc
	static     map[string]string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithPrefix sets the path every registrar is mounted under. The default is /api.
func WithPrefix(prefix string) RouterOption {
	return func(r *Router) {
		r.prefix = prefix
	}
}

// WithHealth serves h at HealthPath.
func WithHealth(h gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.health = h
	}
}

// WithStatic serves the files under dir at urlPath.
func WithStatic(urlPath, dir string) RouterOption {
	return func(r *Router) {
		if urlPath != "" && dir != "" {
			r.static[urlPath] = dir
		}
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine: engine,
		prefix: "/api",
		static: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds registrars to be mounted by Setup.
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	if r.health != nil {
		r.engine.GET(HealthPath, r.health)
	}
	for urlPath, dir := range r.static {
		r.engine.Static(urlPath, dir)
	}

	api := r.engine.Group(r.prefix)
	for _, registrar := range r.registrars {
		registrar.Register(api)
	}
}

// Engine returns the underlying engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
