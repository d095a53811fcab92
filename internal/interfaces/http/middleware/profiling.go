package middleware

import (
	"context"
	"strings"

	"github.com/erp/erpapi/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// Profiling tags profile samples taken while serving a request with its
// method, route and ERP module. Routes outside /api are not tagged.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := c.FullPath()
		if !strings.HasPrefix(route, "/api/") {
			c.Next()
			return
		}
		labels := map[string]string{
			telemetry.ProfilingLabelMethod: c.Request.Method,
			telemetry.ProfilingLabelRoute:  route,
		}
		if module := moduleFromRoute(route); module != "" {
			labels[telemetry.ProfilingLabelModule] = module
		}
		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

// moduleFromRoute returns the segment after /api, e.g. "accounting" for
// /api/accounting/vendors/:id/.
func moduleFromRoute(route string) string {
	rest, ok := strings.CutPrefix(route, "/api/")
	if !ok {
		return ""
	}
	module, _, _ := strings.Cut(rest, "/")
	if strings.HasPrefix(module, ":") {
		return ""
	}
	return module
}
