package handler

import (
	"context"
	"net/http"

	payableapp "github.com/erp/erpapi/internal/application/payable"
	receivableapp "github.com/erp/erpapi/internal/application/receivable"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SummaryHandler serves the bill and invoice summary actions.
type SummaryHandler struct {
	bills    *payableapp.SummaryService
	invoices *receivableapp.SummaryService
	log      *zap.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(bills *payableapp.SummaryService, invoices *receivableapp.SummaryService, log *zap.Logger) *SummaryHandler {
	return &SummaryHandler{bills: bills, invoices: invoices, log: log}
}

// Register adds the action routes below rg.
func (h *SummaryHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/"+payableapp.Module+"/vendor-bills/:id/summary/", h.BillSummary)
	rg.GET("/"+receivableapp.Module+"/customer-invoices/:id/summary/", h.InvoiceSummary)
}

// BillSummary answers the totals of a vendor bill.
func (h *SummaryHandler) BillSummary(c *gin.Context) {
	summarize(c, h.log, func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.bills.Summary(ctx, id)
	})
}

// InvoiceSummary answers the totals of a customer invoice.
func (h *SummaryHandler) InvoiceSummary(c *gin.Context) {
	summarize(c, h.log, func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.invoices.Summary(ctx, id)
	})
}

func summarize(c *gin.Context, log *zap.Logger, fn func(context.Context, uuid.UUID) (any, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
