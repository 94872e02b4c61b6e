package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to add a product to the catalog
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"max=100"`
	SubCategory string          `json:"subCategory" binding:"max=100"`
	Size        string          `json:"size" binding:"max=20"`
	Stock       int             `json:"stock" binding:"min=0"`
	Image       string          `json:"image" binding:"max=500"`
}

// UpdateProductRequest represents a request to edit a product
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"max=100"`
	SubCategory string          `json:"subCategory" binding:"max=100"`
	Size        string          `json:"size" binding:"max=20"`
	Stock       int             `json:"stock" binding:"min=0"`
	Image       string          `json:"image" binding:"max=500"`
}

// ListProductsRequest carries the catalog filter parameters
type ListProductsRequest struct {
	Search   string           `form:"search"`
	Category string           `form:"category"`
	MinPrice *decimal.Decimal `form:"min_price"`
	MaxPrice *decimal.Decimal `form:"max_price"`
}

// AdjustStockRequest represents a stock delta for one product
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Size        string          `json:"size"`
	Stock       int             `json:"stock"`
	InventoryID string          `json:"inventoryId"`
	Image       string          `json:"image"`
}

// DeletedProductResponse represents an archived product in API responses
type DeletedProductResponse struct {
	ProductResponse
	DeletedTime string `json:"deletedTime"`
	DeletedDate string `json:"deletedDate"`
}

// DeletedLogResponse is the deletion archive plus the running counter and
// the combined price of the listed entries
type DeletedLogResponse struct {
	Deleted    []DeletedProductResponse `json:"deleted"`
	Count      int64                    `json:"count"`
	TotalPrice decimal.Decimal          `json:"totalPrice"`
}

// PurgeDeletedRequest names archive entries to remove
type PurgeDeletedRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// toProductResponse converts a domain product to the API shape
func toProductResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Size:        p.Size,
		Stock:       p.Stock,
		InventoryID: p.InventoryID,
		Image:       p.Image,
	}
}

// toDeletedProductResponse converts an archived product to the API shape
func toDeletedProductResponse(d catalog.DeletedProduct) DeletedProductResponse {
	return DeletedProductResponse{
		ProductResponse: toProductResponse(d.Product),
		DeletedTime:     d.DeletedTime,
		DeletedDate:     d.DeletedDate,
	}
}
