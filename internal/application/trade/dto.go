package trade

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/cart"
)

// AddToCartRequest adds units of one product to the cart
type AddToCartRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// TotalsRequest prices the cart with an optional discount
type TotalsRequest struct {
	DiscountValue decimal.Decimal `json:"discountValue"`
	DiscountType  string          `json:"discountType" binding:"omitempty,oneof=percentage fixed"`
}

// CheckoutRequest finalizes the cart into a sale
type CheckoutRequest struct {
	DiscountValue decimal.Decimal `json:"discountValue"`
	DiscountType  string          `json:"discountType" binding:"omitempty,oneof=percentage fixed"`
}

// LineItemResponse represents one cart line in API responses
type LineItemResponse struct {
	ProductID   int64           `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// CartResponse represents the cart contents
type CartResponse struct {
	Items    []LineItemResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

// TotalsResponse represents the priced cart
type TotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// CheckoutResponse reports the recorded sale
type CheckoutResponse struct {
	SaleID       int64           `json:"saleId"`
	CustomerID   int64           `json:"customerId"`
	CustomerName string          `json:"customerName"`
	SaleDate     string          `json:"saleDate"`
	Total        decimal.Decimal `json:"total"`
}

func toLineItemResponse(item cart.LineItem) LineItemResponse {
	return LineItemResponse{
		ProductID:   item.ProductID,
		Name:        item.Name,
		Price:       item.Price,
		Category:    item.Category,
		SubCategory: item.SubCategory,
		Size:        item.Size,
		Quantity:    item.Quantity,
		Amount:      item.Amount(),
	}
}

func toCartResponse(c *cart.Cart) CartResponse {
	items := make([]LineItemResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = toLineItemResponse(item)
	}
	return CartResponse{Items: items, Subtotal: c.Subtotal()}
}

func toTotalsResponse(t cart.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal: t.Subtotal,
		Tax:      t.Tax,
		Discount: t.Discount,
		Total:    t.Total,
	}
}
