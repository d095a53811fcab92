package handler

import (
	"net/http"

	hrapp "github.com/erp/erpapi/internal/application/hr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeaveHandler serves the leave approval actions.
type LeaveHandler struct {
	leaves *hrapp.LeaveService
	log    *zap.Logger
}

// NewLeaveHandler creates a LeaveHandler.
func NewLeaveHandler(leaves *hrapp.LeaveService, log *zap.Logger) *LeaveHandler {
	return &LeaveHandler{leaves: leaves, log: log}
}

// Register adds the action routes below rg.
func (h *LeaveHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/"+hrapp.Module+"/leaves/:id/approve/", h.Approve)
	rg.POST("/"+hrapp.Module+"/leaves/:id/reject/", h.Reject)
}

// Approve approves a leave, optionally recording approved_by.
func (h *LeaveHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	d, err := h.leaves.Approve(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Reject rejects a leave.
func (h *LeaveHandler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.leaves.Reject(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
