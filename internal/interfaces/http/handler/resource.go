package handler

import (
	"net/http"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResourceHandler serves the collection and detail routes of one resource.
type ResourceHandler struct {
	ep       resource.Endpoint
	log      *zap.Logger
	retrieve gin.HandlerFunc
}

// NewResourceHandler creates the handler for ep.
func NewResourceHandler(ep resource.Endpoint, log *zap.Logger) *ResourceHandler {
	h := &ResourceHandler{ep: ep, log: log}
	h.retrieve = h.Get
	return h
}

// WithRetrieve replaces the detail GET handler, for resources whose detail
// representation nests related records.
func (h *ResourceHandler) WithRetrieve(fn gin.HandlerFunc) *ResourceHandler {
	h.retrieve = fn
	return h
}

// Endpoint returns the served endpoint.
func (h *ResourceHandler) Endpoint() resource.Endpoint { return h.ep }

// Register adds the routes below rg:
//
//	GET, POST                 /<module>/<plural>/
//	GET, PUT, PATCH, DELETE   /<module>/<plural>/:id/
func (h *ResourceHandler) Register(rg *gin.RouterGroup) {
	collection := h.ep.Definition().Route()
	detail := collection + ":id/"

	rg.GET(collection, h.List)
	rg.POST(collection, h.Create)
	rg.GET(detail, h.retrieve)
	rg.PUT(detail, h.Update)
	rg.PATCH(detail, h.PartialUpdate)
	rg.DELETE(detail, h.Delete)
}

// List answers the paginated collection.
func (h *ResourceHandler) List(c *gin.Context) {
	page, err := h.ep.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(page, requestURL(c)))
}

// Get answers one record.
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entity, err := h.ep.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Create stores a new record and answers 201.
func (h *ResourceHandler) Create(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	entity, err := h.ep.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

// Update replaces a record (PUT).
func (h *ResourceHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// PartialUpdate patches a record (PATCH).
func (h *ResourceHandler) PartialUpdate(c *gin.Context) {
	h.update(c, true)
}

func (h *ResourceHandler) update(c *gin.Context, partial bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}
	entity, err := h.ep.Update(c.Request.Context(), id, body, partial)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Delete removes a record and answers 204.
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ep.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
