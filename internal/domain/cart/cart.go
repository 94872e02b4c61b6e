package cart

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// LineItem is one cart line: a snapshot of the product at the time it was
// added plus the accumulated quantity. The JSON field names match the
// purchases schema recorded on sales.
type LineItem struct {
	ProductID   int64           `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
}

// Amount returns the line total (price times quantity)
func (i LineItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds the pending sale for the active customer. At most one line
// item exists per product id; adding the same product again merges
// quantities.
type Cart struct {
	Items []LineItem `json:"items"`
}

// New returns an empty cart
func New() *Cart {
	return &Cart{Items: []LineItem{}}
}

// AddItem merges the product into the cart, summing quantities when a line
// for the same product already exists
func (c *Cart) AddItem(p catalog.Product, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += quantity
			return nil
		}
	}

	c.Items = append(c.Items, LineItem{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Size:        p.Size,
		Quantity:    quantity,
	})
	return nil
}

// RemoveItem drops the line for the given product and returns the quantity
// that was held, so the caller can release the reserved stock
func (c *Cart) RemoveItem(productID int64) (int, error) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			quantity := c.Items[i].Quantity
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return quantity, nil
		}
	}
	return 0, shared.ErrNotFound
}

// Quantity returns the quantity held for a product, zero when absent
func (c *Cart) Quantity(productID int64) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// IsEmpty returns true when the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// Subtotal returns the sum of all line amounts
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.Amount())
	}
	return subtotal
}
