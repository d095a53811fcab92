// Package middleware provides the HTTP middleware of the ERP API.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/erp/erpapi/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Request headers read by the middleware.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderUser      = "X-User"
)

// MaxRequestIDLength bounds client supplied request ids.
const MaxRequestIDLength = 128

// CORS answers preflight requests and sets the allow headers for listed
// origins. Requests from other origins pass through without CORS headers.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	wildcard := slices.Contains(cfg.AllowOrigins, "*")
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := ""
		switch {
		case origin == "":
		case wildcard:
			allowed = "*"
		case slices.Contains(cfg.AllowOrigins, origin):
			allowed = origin
		}

		if allowed != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", allowed)
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			h.Set("Access-Control-Expose-Headers", HeaderRequestID)
			h.Add("Vary", "Origin")
			if cfg.AllowCredentials && allowed != "*" {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestID propagates X-Request-ID, generating one when absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if len(id) > MaxRequestIDLength {
			id = id[:MaxRequestIDLength]
		}
		if id == "" {
			id = generateRequestID()
		}
		c.Set(logger.GinRequestIDKey, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

func generateRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Actor records who issued the request: the X-User header, or the system
// user, together with the client address.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := resource.Actor{
			User: strings.TrimSpace(c.GetHeader(HeaderUser)),
			IP:   c.ClientIP(),
		}
		c.Request = c.Request.WithContext(resource.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
