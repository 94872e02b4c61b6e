package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reportapp "github.com/storefront/backend/internal/application/report"
)

// SalesHandler handles sales history and dashboard endpoints
type SalesHandler struct {
	BaseHandler
	salesService *reportapp.SalesService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(salesService *reportapp.SalesService) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
	}
}

// List returns the sales history, optionally filtered by year, month,
// day and 1-based index
func (h *SalesHandler) List(c *gin.Context) {
	var req reportapp.ListSalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sales, err := h.salesService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sales)
}

// GetByID returns one recorded sale
func (h *SalesHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.salesService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// Summary returns the dashboard aggregation of the whole ledger
func (h *SalesHandler) Summary(c *gin.Context) {
	summary, err := h.salesService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Delete removes one sale from the ledger
func (h *SalesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.salesService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteMany removes a batch of sales from the ledger
func (h *SalesHandler) DeleteMany(c *gin.Context) {
	var req reportapp.DeleteSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.salesService.DeleteMany(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Invoice renders a printable invoice for one sale
func (h *SalesHandler) Invoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	html, err := h.salesService.RenderInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
