// Package handler contains the gin handlers of the ERP API: one generic
// handler serving every registered resource, plus the module actions.
package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/erp/erpapi/internal/infrastructure/logger"
	"github.com/erp/erpapi/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError writes the error response for err. Errors without a client
// facing meaning are logged and answered with a generic 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status, body, internal := dto.ErrorBody(err)
	if internal {
		log.Error("Request failed",
			zap.String("request_id", c.GetString(logger.GinRequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}

// pathID parses the :id parameter. Ids that are not UUIDs cannot exist, so
// they answer 404 like a missing row.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.Detail{Detail: shared.ErrNotFound.Message})
		return uuid.Nil, false
	}
	return id, true
}

// readBody returns the raw request body.
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.Detail{
				Detail: "Request body exceeds the maximum allowed size.",
			})
			return nil, false
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.Detail{Detail: "Could not read the request body."})
		return nil, false
	}
	return body, true
}

// requestURL rebuilds the absolute URL the client used. The scheme follows
// the TLS state or X-Forwarded-Proto.
func requestURL(c *gin.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	} else if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return &url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
	}
}
