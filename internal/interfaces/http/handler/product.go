package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// ProductHandler handles catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// parseID extracts the numeric :id path parameter
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parsePriceBound parses an optional decimal query parameter
func parsePriceBound(c *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, false
	}
	return &value, true
}

// parseCatalogQuery reads the filter parameters shared by the catalog
// listing and the deletion archive
func (h *ProductHandler) parseCatalogQuery(c *gin.Context) (catalogapp.ListProductsRequest, bool) {
	req := catalogapp.ListProductsRequest{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	minPrice, ok := parsePriceBound(c, "min_price")
	if !ok {
		h.BadRequest(c, "Invalid min_price")
		return req, false
	}
	maxPrice, ok := parsePriceBound(c, "max_price")
	if !ok {
		h.BadRequest(c, "Invalid max_price")
		return req, false
	}
	req.MinPrice = minPrice
	req.MaxPrice = maxPrice
	return req, true
}

// List returns the catalog, optionally narrowed by search, category and
// price bounds
func (h *ProductHandler) List(c *gin.Context) {
	req, ok := h.parseCatalogQuery(c)
	if !ok {
		return
	}

	products, err := h.productService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// GetByID returns one product
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Update edits a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// AdjustStock applies a stock delta to a product
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product, archiving it in the deletion log
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	archived, err := h.productService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, archived)
}

// DeletedLog returns the deletion archive and the running counter,
// narrowed by the same filters as the catalog listing
func (h *ProductHandler) DeletedLog(c *gin.Context) {
	req, ok := h.parseCatalogQuery(c)
	if !ok {
		return
	}

	log, err := h.productService.DeletedLog(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, log)
}

// PurgeDeleted removes entries from the deletion archive
func (h *ProductHandler) PurgeDeleted(c *gin.Context) {
	var req catalogapp.PurgeDeletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	removed, err := h.productService.PurgeDeleted(c.Request.Context(), req.IDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"removed": removed})
}
