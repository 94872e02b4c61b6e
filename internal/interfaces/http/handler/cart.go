package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/storefront/backend/internal/application/trade"
)

// CartHandler handles the point-of-sale cart endpoints
type CartHandler struct {
	BaseHandler
	checkoutService *tradeapp.CheckoutService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(checkoutService *tradeapp.CheckoutService) *CartHandler {
	return &CartHandler{
		checkoutService: checkoutService,
	}
}

// View returns the cart contents
func (h *CartHandler) View(c *gin.Context) {
	h.Success(c, h.checkoutService.ViewCart(c.Request.Context()))
}

// AddItem reserves stock and adds a line to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req tradeapp.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.checkoutService.AddToCart(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// RemoveItem drops a line from the cart, returning its stock
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.checkoutService.RemoveFromCart(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// Totals prices the cart with the requested discount
func (h *CartHandler) Totals(c *gin.Context) {
	var req tradeapp.TotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	totals, err := h.checkoutService.Totals(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, totals)
}

// Checkout records the cart as a sale and empties it
func (h *CartHandler) Checkout(c *gin.Context) {
	var req tradeapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.checkoutService.Checkout(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}
