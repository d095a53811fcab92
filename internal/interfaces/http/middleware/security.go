package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// Secure sets the response security headers of the active bundle.
func Secure(cfg config.SecurityConfig) gin.HandlerFunc {
	var hsts string
	if cfg.HSTSSeconds > 0 {
		hsts = fmt.Sprintf("max-age=%d", cfg.HSTSSeconds)
		if cfg.HSTSIncludeSubdomains {
			hsts += "; includeSubDomains"
		}
		if cfg.HSTSPreload {
			hsts += "; preload"
		}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		if cfg.FrameOptions != "" {
			h.Set("X-Frame-Options", cfg.FrameOptions)
		}
		if cfg.XSSFilter {
			h.Set("X-XSS-Protection", "1; mode=block")
		}
		if cfg.ContentTypeNosniff {
			h.Set("X-Content-Type-Options", "nosniff")
		}
		if cfg.ContentSecurityPolicy != "" {
			h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
		}
		if hsts != "" && isSecure(c.Request) {
			h.Set("Strict-Transport-Security", hsts)
		}
		h.Set("Referrer-Policy", "same-origin")
		c.Next()
	}
}

// SSLRedirect sends plain HTTP requests to their https URL. Requests arriving
// through a TLS terminating proxy are recognised by X-Forwarded-Proto.
func SSLRedirect(exempt ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSecure(c.Request) {
			c.Next()
			return
		}
		for _, path := range exempt {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}
		target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
		c.Redirect(http.StatusMovedPermanently, target)
		c.Abort()
	}
}

// AllowedHosts rejects requests whose Host header is not listed. "*" allows
// every host and a leading dot matches the domain and its subdomains.
func AllowedHosts(hosts []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hostAllowed(c.Request.Host, hosts) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid host header."})
	}
}

func hostAllowed(host string, allowed []string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, pattern := range allowed {
		pattern = strings.ToLower(pattern)
		switch {
		case pattern == "*":
			return true
		case strings.HasPrefix(pattern, "."):
			if host == pattern[1:] || strings.HasSuffix(host, pattern) {
				return true
			}
		case host == pattern:
			return true
		}
	}
	return false
}

// isSecure reports whether the client connection used TLS.
func isSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
